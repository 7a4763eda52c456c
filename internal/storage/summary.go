package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

// Summary aggregates move counts over recorded sessions.
type Summary struct {
	Sessions      int
	TotalMoves    int
	TotalCaptures int
	MeanMoves     float64
	MedianMoves   float64
	MaxMoves      float64
	TotalPlayTime time.Duration
}

// Summarize computes a Summary over sessions. An empty slice yields the zero Summary.
func Summarize(sessions []*Session) (Summary, error) {
	var sum Summary
	if len(sessions) == 0 {
		return sum, nil
	}

	moves := make([]int, 0, len(sessions))
	for _, sess := range sessions {
		moves = append(moves, sess.Moves)
		sum.TotalMoves += sess.Moves
		sum.TotalCaptures += sess.Captures
		sum.TotalPlayTime += sess.Duration()
	}
	sum.Sessions = len(sessions)

	data := stats.LoadRawData(moves)

	var err error
	if sum.MeanMoves, err = stats.Mean(data); err != nil {
		return sum, fmt.Errorf("storage: mean: %w", err)
	}
	if sum.MedianMoves, err = stats.Median(data); err != nil {
		return sum, fmt.Errorf("storage: median: %w", err)
	}
	if sum.MaxMoves, err = stats.Max(data); err != nil {
		return sum, fmt.Errorf("storage: max: %w", err)
	}
	return sum, nil
}

// Summary loads every session and summarizes it.
func (s *Storage) Summary() (Summary, error) {
	sessions, err := s.Sessions()
	if err != nil {
		return Summary{}, err
	}
	return Summarize(sessions)
}

func (s Summary) String() string {
	if s.Sessions == 0 {
		return "no sessions recorded"
	}
	return fmt.Sprintf("sessions %d, moves %d (mean %.1f, median %.1f, max %.0f), captures %d, played %s",
		s.Sessions, s.TotalMoves, s.MeanMoves, s.MedianMoves, s.MaxMoves, s.TotalCaptures,
		s.TotalPlayTime.Round(time.Second))
}

func sortSessions(sessions []*Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Started.Before(sessions[j].Started)
	})
}
