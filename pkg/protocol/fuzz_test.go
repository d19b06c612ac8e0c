package protocol

import "testing"

// The decoders must never panic on arbitrary input.

func FuzzDecodeMutations(f *testing.F) {
	f.Add(EncodeMutations(sampleMutations()))
	f.Add([]byte{})
	f.Add([]byte{0x01, 0x01, 0x05, 0x01, 0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	f.Fuzz(func(t *testing.T, data []byte) {
		mf, err := DecodeMutations(data)
		if err != nil {
			return
		}
		// Varints may be non-canonical, so compare decoded forms.
		again, err := DecodeMutations(EncodeMutations(mf))
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if len(again.Mutations) != len(mf.Mutations) || again.Seq != mf.Seq {
			t.Errorf("re-decode mismatch: %+v vs %+v", again, mf)
		}
	})
}

func FuzzDecodeEvent(f *testing.F) {
	f.Add(EncodeEvent(&Event{Target: 1, Name: "click", Payload: "{}"}))
	f.Add([]byte{0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeEvent(data)
	})
}

func FuzzDecodeFrame(f *testing.F) {
	f.Add(NewFrame(FramePatches, []byte{1, 2}).Encode())
	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeFrame(data)
	})
}
