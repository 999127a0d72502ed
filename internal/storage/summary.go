package storage

import "github.com/vovakirdan/colony/internal/colony"

// Summarize builds the history record for a session.
func Summarize(sess *colony.Session) SessionSummary {
	stats := sess.Stats()
	return SessionSummary{
		Preset:      sess.Preset(),
		Seed:        sess.Seed(),
		Placed:      stats.Placed,
		Rejected:    stats.Rejected,
		OutOfBounds: stats.OutOfBounds,
		Duration:    sess.Elapsed(),
	}
}

// Record saves a session unless it was abandoned without any placement
// attempt. It reports whether a record was written.
func (s *Store) Record(sess *colony.Session) (bool, error) {
	if sess.Stats().Attempts() == 0 {
		return false, nil
	}
	if _, err := s.SaveSession(Summarize(sess)); err != nil {
		return false, err
	}
	return true, nil
}
