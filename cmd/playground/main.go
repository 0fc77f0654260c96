package main

import (
	"crypto/sha256"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kilianc/mdxc/internal/mdx/discover"
	"github.com/kilianc/mdxc/internal/mdx/outfile"
	"github.com/kilianc/mdxc/pkg/mdx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: playground [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Watches ./playground/page.hast.json and recompiles it to page.jsx on changes.")
		flag.PrintDefaults()
	}
	interval := flag.Duration("interval", 300*time.Millisecond, "watch polling interval")
	preserve := flag.Bool("preserve-newlines", false, "keep newline text nodes as text outside <pre> too")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := watchAndCompile(*interval, mdx.Options{PreserveNewlines: *preserve}); err != nil {
		logrus.Fatal(err)
	}
}

func watchAndCompile(interval time.Duration, opts mdx.Options) error {
	root, err := discover.ModuleRoot(".")
	if err != nil {
		return err
	}
	target := filepath.Join(root, "playground", "page.hast.json")

	var lastHash [32]byte
	var have bool

	for {
		src, err := os.ReadFile(target)
		if err != nil {
			logrus.Warnf("playground: read error: %v", err)
			time.Sleep(interval)
			continue
		}
		h := sha256.Sum256(src)
		if !have || h != lastHash {
			lastHash = h
			have = true
			if err := compileOnce(target, src, opts); err != nil {
				logrus.Errorf("playground: %v", err)
			}
		}

		time.Sleep(interval)
	}
}

func compileOnce(target string, src []byte, opts mdx.Options) error {
	out, err := mdx.CompileJSON(src, opts)
	if err != nil {
		return errors.Wrap(err, target)
	}
	outPath := outfile.OutputPath(target)
	if _, err := outfile.WriteGeneratedFile(outPath, []byte(out)); err != nil {
		return err
	}
	logrus.Infof("playground: compiled %s", outPath)
	return nil
}
