package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/dlstool/vcf"
	"github.com/dlstool/vcf/catalog"
	"github.com/dlstool/vcf/plugincfg"
	"github.com/dlstool/vcf/schema"
	"github.com/dlstool/vcf/vcfio"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var errAborted = errors.New("aborted")

func (e *env) log() *zerolog.Logger { return zerolog.Ctx(e.ctx) }

func (e *env) detect(c *detectCmd) error {
	failed := 0
	for _, path := range c.Files {
		b, err := vcfio.ReadFile(path)
		if err != nil {
			e.log().Error().Err(err).Str("path", path).Msg("read failed")
			failed++
			continue
		}
		fmt.Fprintf(e.stdout, "%s\t%s\n", vcf.DetectVersion(b), path)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files could not be read", failed, len(c.Files))
	}
	return nil
}

func (e *env) analyze(c *analyzeCmd) error {
	if err := checkFormat(c.Format); err != nil {
		return err
	}
	doc, err := vcf.Load(c.File)
	if err != nil {
		return err
	}
	var summary any
	switch doc.Version {
	case schema.V1:
		summary = vcf.AnalyzeV1(doc.V1)
	case schema.V2:
		summary = vcf.AnalyzeV2(doc.V2)
	}
	if c.Format != "text" {
		return e.encode(c.Format, summary)
	}
	return writeSummary(e.stdout, c.File, summary)
}

func (e *env) convert(c *convertCmd) error {
	doc, err := vcf.Load(c.File)
	if err != nil {
		return err
	}
	out, loss, err := doc.Convert()
	if err != nil {
		return err
	}
	dst := c.Output
	if dst == "" {
		dst = e.cfg.Output.PathFor(c.File, out.Version)
	}
	e.log().Info().
		Str("from", doc.Version.String()).
		Str("to", out.Version.String()).
		Int("lost", len(loss)).
		Msg("converted")

	if !loss.Empty() {
		writeLoss(e.stdout, loss)
		if !c.Yes && !e.cfg.Convert.AcceptLoss {
			ok, err := e.confirm(fmt.Sprintf("%d features will be lost. Write %s?", len(loss), dst))
			if err != nil {
				return err
			}
			if !ok {
				return errAborted
			}
		}
	}
	if err := vcf.Save(dst, out, e.cfg.Output.WriterOptions()...); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "wrote %s (%s)\n", dst, out.Version)
	return nil
}

// confirm asks a yes/no question on stdin; anything but y or yes is no.
func (e *env) confirm(question string) (bool, error) {
	fmt.Fprintf(e.stdout, "%s [y/N] ", question)
	line, err := bufio.NewReader(e.stdin).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(e.stdout)
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (e *env) fmt(c *fmtCmd) error {
	doc, err := vcf.Load(c.File)
	if err != nil {
		return err
	}
	opts := e.cfg.Output.WriterOptions()
	if c.Output != "" {
		return vcf.Save(c.Output, doc, opts...)
	}
	b, err := doc.Marshal(opts...)
	if err != nil {
		return err
	}
	_, err = e.stdout.Write(b)
	return errors.WithStack(err)
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func (e *env) dump(c *dumpCmd) error {
	doc, err := vcf.Load(c.File)
	if err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "# %s %s\n", c.File, doc.Version)
	if doc.Version == schema.V1 {
		dumpConfig.Fdump(e.stdout, doc.V1)
	} else {
		dumpConfig.Fdump(e.stdout, doc.V2)
	}
	return nil
}

func (e *env) scan(c *scanCmd) error {
	if err := checkFormat(c.Format); err != nil {
		return err
	}
	s, err := catalog.NewScanner(e.cfg.Catalog.CacheSize, e.cfg.Catalog.Workers)
	if err != nil {
		return err
	}
	ix, err := s.Scan(e.ctx, c.Dir)
	if err != nil {
		return err
	}
	if c.Format != "text" {
		return e.encode(c.Format, ix)
	}
	writeIndex(e.stdout, ix)
	return nil
}

func (e *env) plugin(c *pluginCmd) error {
	path := c.Path
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		path, _ = plugincfg.Paths(path)
	}
	f, err := plugincfg.Load(path)
	if err != nil {
		return err
	}
	sig := plugincfg.Score(f)
	fmt.Fprintf(e.stdout, "file:     %s\n", path)
	fmt.Fprintf(e.stdout, "sections: %s\n", strings.Join(f.Sections(), ", "))
	fmt.Fprintf(e.stdout, "signals:  v1=%d v2=%d\n", sig.V1, sig.V2)
	fmt.Fprintf(e.stdout, "version:  %s\n", sig.Version())
	return nil
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return usageError{msg: fmt.Sprintf("unknown format %q", format)}
}

func (e *env) encode(format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(e.stdout)
		enc.SetIndent("", "  ")
		return errors.WithStack(enc.Encode(v))
	case "yaml":
		enc := yaml.NewEncoder(e.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	}
	return usageError{msg: fmt.Sprintf("unknown format %q", format)}
}
