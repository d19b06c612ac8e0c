// Package config loads tessera.json.
//
// The file is looked up in the working directory and its parents. Every
// field is optional; missing fields take the defaults from New.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "addr": ":3000",
//	    "readTimeout": "10s",
//	    "writeTimeout": "10s",
//	    "shutdownTimeout": "5s"
//	  },
//	  "live": {
//	    "queueSize": 64,
//	    "writeTimeout": "5s",
//	    "pingInterval": "30s"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": true,
//	    "namespace": "tessera",
//	    "path": "/metrics"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Discover(".")
//	if err != nil {
//	    return err
//	}
//	logger := cfg.Log.NewLogger(os.Stderr)
package config
