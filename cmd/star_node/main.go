package main

import (
	"starchain/cfg"
	"starchain/node"
	"starchain/util"
	"starchain/util/log"
	"starchain/version"

	"flag"
	"fmt"
	"os"
)

func main() {
	cfgfile := flag.String("config", "", "configuration file (TOML); defaults are used when empty")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	config := cfg.DefaultConfig()
	if *cfgfile != "" {
		var err error
		config, err = cfg.LoadConfig(*cfgfile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERR: %v\n", err)
			os.Exit(1)
		}
	}

	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %v\n", err)
		os.Exit(1)
	}
	log.SetLevel(level)
	logger := log.New(os.Stderr)
	log.SetDefaultLogger(logger)

	node, err := node.NewNode(config, logger.With("module", "node"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %v\n", err)
		os.Exit(1)
	}
	if err := node.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "ERR: %v\n", err)
		os.Exit(1)
	}
	util.TrapSignalTerm(func(sig os.Signal){
		fmt.Printf("captured %v, exiting...\n", sig)
		node.Stop()
	})
	node.WaitForStop()
}
