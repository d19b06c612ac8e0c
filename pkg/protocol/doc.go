// Package protocol implements the binary wire format used by live sessions.
//
// The server streams host mutations to the client; the client sends events
// back addressed by host node ID. Both directions share one framing scheme.
//
// # Wire Format
//
// Every message is framed with a 4-byte header:
//
//	┌─────────────┬──────────────┬───────────────────────────────┐
//	│ Frame Type  │ Flags        │ Payload Length                │
//	│ (1 byte)    │ (1 byte)     │ (2 bytes, big-endian)         │
//	└─────────────┴──────────────┴───────────────────────────────┘
//
// # Frame Types
//
//   - FrameEvent (0x01): client to server event
//   - FramePatches (0x02): server to client mutation batch
//   - FrameError (0x03): error report, either direction
//
// # Mutations
//
// A patches payload is a sequence number and a varint count followed by
// that many mutations. Each mutation starts with its op byte and target ID:
//
//	CreateElement  [0x01][id][tag]
//	CreateText     [0x02][id][text]
//	CreateRawText  [0x03][id][text]
//	CreateComment  [0x04][id][text]
//	SetAttr        [0x05][id][key][value]
//	Listen         [0x06][id][event]
//	AppendChild    [0x07][parent][child]
//	Replace        [0x08][old][replacement]
//
// IDs are uvarints; strings are uvarint length-prefixed UTF-8. Op values
// match memhost.Op so a recorded host log converts without a lookup table.
//
// # Events
//
//	[id: uvarint][name: string][payload: string]
//
// # Limits
//
// Decoders reject length prefixes larger than the configured allocation
// limit and collection counts larger than MaxCollectionCount, so a hostile
// peer cannot force large allocations with a few bytes.
package protocol
