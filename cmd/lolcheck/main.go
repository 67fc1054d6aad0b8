// Command lolcheck compares the operation versions of package lol with
// the riot api reference page. It exits with status 1 on any mismatch.
package main

import (
	"context"
	"flag"
	"io/ioutil"
	"net/http"
	"os"

	lol "github.com/mc10/riot-api"
	"github.com/mc10/riot-api/internal/apidocs"
	"github.com/mc10/riot-api/internal/config"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.TextFormatter{ForceColors: true})
	log.SetLevel(log.InfoLevel)
}

func main() {
	configPath := flag.String("config", "", "yaml config file")
	dumpPath := flag.String("dump", "", "write the cleaned reference page to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config. %v", err)
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	doc, err := apidocs.Fetch(ctx, &http.Client{}, cfg.DocsURL)
	if err != nil {
		log.Fatalf("Failed to fetch %s\nError: %v", cfg.DocsURL, err)
	}

	if *dumpPath != "" {
		src, err := apidocs.Format(doc)
		if err != nil {
			log.Fatalf("Failed to format document. %v", err)
		}
		if err := ioutil.WriteFile(*dumpPath, []byte(src), 0644); err != nil {
			log.Fatalf("Failed to write to %s\nError: %v", *dumpPath, err)
		}
	}

	resources, err := apidocs.Resources(doc)
	if err != nil {
		log.Fatalf("Failed to parse resources. %v", err)
	}
	for _, res := range resources {
		log.WithFields(log.Fields{
			"id":      res.Num,
			"version": res.Version,
			"regions": res.Regions,
		}).Debugf("Resource %s", res.ID)
	}

	mismatches, untracked := apidocs.Compare(lol.Operations(), resources)
	for _, id := range untracked {
		log.Infof("Resource %s is not used", id)
	}
	for _, m := range mismatches {
		log.Warn(m.String())
	}

	if len(mismatches) != 0 {
		os.Exit(1)
	}
	log.Infof("All %d operations match the reference", len(lol.Operations()))
}
