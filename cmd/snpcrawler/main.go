package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/snpcrawler/src/server"
)

func main() {

	app := cli.NewApp()

	app.Name = "snpcrawler"
	app.Version = "0.1.0"
	app.Description = "scrape gene and snp pages from snpedia into csv tables"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file",
			Value: "./config.yaml",
		},
	}

	s := server.NewServer()
	app.Action = s.Start

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
