package uci

import (
	"strconv"
	"strings"
)

// Info is a typed view of one "info" progress line. The raw line remains
// the stored contract on a search; Info is a convenience decode for
// consumers that want numbers instead of tokens. Fields absent from the
// line keep their zero value; pointer fields distinguish absent from zero.
type Info struct {
	Depth          int
	SelDepth       int
	MultiPV        int
	ScoreCP        *int
	ScoreMate      *int
	LowerBound     bool
	UpperBound     bool
	Nodes          int64
	NPS            int64
	HashFull       int
	TBHits         int64
	TimeMS         int
	CurrMove       string
	CurrMoveNumber int
	PV             []string
	String         string

	// Raw is the unmodified line.
	Raw string
}

// ParseInfo decodes an info line into an Info. Returns false when line is
// not an info line. Unknown tokens are skipped; a malformed number leaves
// its field zero rather than failing the whole line.
func ParseInfo(line string) (*Info, bool) {
	if !IsInfo(line) {
		return nil, false
	}

	info := &Info{Raw: line}
	fields := strings.Fields(line)

	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			i++
			info.Depth = atoiField(fields, i)
		case "seldepth":
			i++
			info.SelDepth = atoiField(fields, i)
		case "multipv":
			i++
			info.MultiPV = atoiField(fields, i)
		case "score":
			if i+2 < len(fields) {
				v := atoiField(fields, i+2)
				switch fields[i+1] {
				case "cp":
					info.ScoreCP = &v
				case "mate":
					info.ScoreMate = &v
				}
				i += 2
			}
		case "lowerbound":
			info.LowerBound = true
		case "upperbound":
			info.UpperBound = true
		case "nodes":
			i++
			info.Nodes = atoi64Field(fields, i)
		case "nps":
			i++
			info.NPS = atoi64Field(fields, i)
		case "hashfull":
			i++
			info.HashFull = atoiField(fields, i)
		case "tbhits":
			i++
			info.TBHits = atoi64Field(fields, i)
		case "time":
			i++
			info.TimeMS = atoiField(fields, i)
		case "currmove":
			i++
			if i < len(fields) {
				info.CurrMove = fields[i]
			}
		case "currmovenumber":
			i++
			info.CurrMoveNumber = atoiField(fields, i)
		case "pv":
			info.PV = fields[i+1:]

			return info, true
		case "string":
			info.String = strings.Join(fields[i+1:], " ")

			return info, true
		}
	}

	return info, true
}

// ParseBestMove decodes a bestmove line into the move and the optional
// ponder move. Returns ok=false when line is not a bestmove line or
// carries no move token.
func ParseBestMove(line string) (move, ponder string, ok bool) {
	if !IsBestMove(line) {
		return "", "", false
	}

	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", "", false
	}

	move = fields[1]
	if len(fields) >= 4 && fields[2] == "ponder" {
		ponder = fields[3]
	}

	return move, ponder, true
}

func atoiField(fields []string, i int) int {
	if i >= len(fields) {
		return 0
	}

	n, _ := strconv.Atoi(fields[i])

	return n
}

func atoi64Field(fields []string, i int) int64 {
	if i >= len(fields) {
		return 0
	}

	n, _ := strconv.ParseInt(fields[i], 10, 64)

	return n
}
