// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// slotstep drives a pending gate tick by tick to show occupied-slot handles
// at work: each job is offered, then stepped until it has waited long enough.
//
// Usage:
//
//	slotstep [-n jobs] [-r ready-after] [-v]
//
// Options:
//
//	-n, --jobs          Number of jobs to offer (default: 3)
//	-r, --ready-after   Steps a job waits before it is ready (default: 2)
//	-v, --verbose       Enable debug logging
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	flag "github.com/spf13/pflag"

	"code.hybscloud.com/slot/internal/pending"
)

type job struct {
	ID     int
	Waited int
}

func (j job) String() string {
	return fmt.Sprintf("job#%d(waited=%d)", j.ID, j.Waited)
}

func main() {
	log.SetHandler(cli.Default)
	err := run(os.Args[1:], os.Stderr)
	if err == nil {
		return
	}
	log.WithError(err).Fatal("slotstep")
}

func run(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("slotstep", flag.ContinueOnError)
	fs.SetOutput(w)
	jobs := fs.IntP("jobs", "n", 3, "number of jobs to offer")
	readyAfter := fs.IntP("ready-after", "r", 2, "steps a job waits before it is ready")
	verbose := fs.BoolP("verbose", "v", false, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if *jobs < 0 {
		return fmt.Errorf("invalid --jobs %d: must not be negative", *jobs)
	}
	if *readyAfter < 0 {
		return fmt.Errorf("invalid --ready-after %d: must not be negative", *readyAfter)
	}

	logger := &log.Logger{Handler: cli.New(w), Level: log.InfoLevel}
	if *verbose {
		logger.Level = log.DebugLevel
	}

	gate := pending.New[job]("jobs", logger)
	for id := 1; id <= *jobs; id++ {
		if err := gate.Offer(job{ID: id}); err != nil {
			return err
		}
		for {
			j, ok := gate.Step(func(j *job) bool {
				if j.Waited >= *readyAfter {
					return true
				}
				j.Waited++
				return false
			})
			if ok {
				logger.WithField("job", j.String()).Info("done")
				break
			}
		}
	}

	logger.WithFields(log.Fields{
		"jobs":  *jobs,
		"steps": gate.Steps(),
	}).Info("finished")
	return nil
}
