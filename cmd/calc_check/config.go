package main

import "flag"

type cliConfig struct {
	SuitePath string
	Verbose   bool
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/smoke.yaml", "Path to expression suite YAML")
	flag.BoolVar(&cfg.Verbose, "v", false, "Log passing cases too")

	flag.Parse()
	return cfg
}
