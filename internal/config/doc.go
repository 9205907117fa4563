// Package config loads trackable's configuration.
//
// Values are layered, later sources overriding earlier ones:
//
//  1. built-in defaults
//  2. trackable.json (optional unless a path is given explicitly)
//  3. TRACKABLE_* environment variables, "__" separating nested keys
//
// # Configuration File Structure
//
//	{
//	  "converter": "kebab",
//	  "prefixes": {
//	    "ga": "ga",
//	    "ua": "ua-"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "namespace": "trackable"
//	  }
//	}
//
// The same prefix from the environment: TRACKABLE_PREFIXES__GA=ga.
//
// # Usage
//
//	cfg, err := config.Load(config.Options{Dir: "."})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	naming, err := cfg.NamingConfig()
package config
