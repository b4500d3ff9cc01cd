package ucisdk

import (
	"context"
	"iter"
)

// InfoLines streams a search's progress as decoded Info values.
//
// It wraps Search.Lines: info lines are parsed as they arrive, other
// engine chatter (including the final bestmove line) is skipped. The
// sequence ends when the search finishes; retrieve the result with
// Search.BestMove. A search that ends without a result yields
// ErrSearchAborted.
func InfoLines(ctx context.Context, search *Search) iter.Seq2[Info, error] {
	return func(yield func(Info, error) bool) {
		for line, err := range search.Lines(ctx) {
			if err != nil {
				yield(Info{}, err)

				return
			}

			info, ok := ParseInfo(line)
			if !ok {
				continue
			}

			if !yield(*info, nil) {
				return
			}
		}
	}
}

// SnapshotInfo decodes the info lines a search has produced so far.
// It never blocks; pair it with Search.WaitDone to read the final state.
func SnapshotInfo(search *Search) []Info {
	raw := search.Info()

	infos := make([]Info, 0, len(raw))

	for _, line := range raw {
		if info, ok := ParseInfo(line); ok {
			infos = append(infos, *info)
		}
	}

	return infos
}

// LastInfo decodes the most recent parseable info line of a search,
// typically the deepest completed iteration. It reports false when the
// search has produced no info lines yet.
func LastInfo(search *Search) (Info, bool) {
	raw := search.Info()

	for i := len(raw) - 1; i >= 0; i-- {
		if info, ok := ParseInfo(raw[i]); ok {
			return *info, true
		}
	}

	return Info{}, false
}
