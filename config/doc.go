// Package config holds the runtime configuration of linkcheck.
//
// Values are layered in this order, later layers winning:
//
//  1. Built-in defaults (NewConfig)
//  2. The YAML configuration file (LoadConfigFile)
//  3. LINKCHECK_* environment variables, optionally from a .env file (LoadEnv)
//  4. Command-line flags
//
// The configuration file may also extend the User-Agent table:
//
//	user_agent: IE9
//	interval: 2
//	timeout: 10s
//	format: json
//	robots: true
//	user_agents:
//	  - name: Googlebot
//	    value: "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
package config
