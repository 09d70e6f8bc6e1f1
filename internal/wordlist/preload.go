package wordlist

import (
	"golang.org/x/sync/errgroup"

	"github.com/verte-zerg/tokitype/internal/model"
)

// Pending is a dataset load running in the background.
type Pending struct {
	group   errgroup.Group
	records []model.WordRecord
}

// Preload starts loading the dataset at path and returns immediately.
func Preload(path string) *Pending {
	p := &Pending{}
	p.group.Go(func() error {
		records, err := LoadWords(path)
		if err != nil {
			return err
		}
		p.records = records
		return nil
	})
	return p
}

// Wait blocks until the load finishes and returns its result.
func (p *Pending) Wait() ([]model.WordRecord, error) {
	if err := p.group.Wait(); err != nil {
		return nil, err
	}
	return p.records, nil
}
