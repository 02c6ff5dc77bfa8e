// Package services composes the segment providers into prompt data.
package services

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/eirnym-learn/promptline/internal/domain"
	"github.com/eirnym-learn/promptline/internal/logging"
	"github.com/eirnym-learn/promptline/internal/ports"
)

// PromptService gathers all prompt segments for one redraw.
type PromptService struct {
	git        ports.GitCollector
	host       ports.HostInfoProvider
	python     ports.PythonDetector
	timeLayout string
	log        logging.Logger
	now        func() time.Time
}

// NewPromptService creates a prompt service. A nil logger disables
// diagnostics.
func NewPromptService(git ports.GitCollector, host ports.HostInfoProvider, python ports.PythonDetector, timeLayout string, log logging.Logger) *PromptService {
	if log == nil {
		log = logging.Nop()
	}
	return &PromptService{
		git:        git,
		host:       host,
		python:     python,
		timeLayout: timeLayout,
		log:        log,
		now:        time.Now,
	}
}

// Gather collects every segment concurrently and joins before returning.
// A failing provider degrades to an absent segment; the prompt renders
// with whatever was gathered.
func (s *PromptService) Gather(ctx context.Context, req ports.GitRequest) domain.PromptData {
	var data domain.PromptData

	var wg conc.WaitGroup
	wg.Go(func() {
		data.DateTime = s.now().Format(s.timeLayout)
	})
	wg.Go(func() {
		info := s.host.HostInfo()
		data.Hostname = info.Hostname
		data.Username = info.Username
	})
	wg.Go(func() {
		data.Python = s.python.Detect()
	})
	wg.Go(func() {
		snapshot, err := s.git.Collect(ctx, req)
		if err != nil {
			s.log.Debug("collecting git info", "err", err)
			return
		}
		data.Git = snapshot
	})
	wg.Wait()

	return data
}
