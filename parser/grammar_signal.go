package parser

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dbcgo/dbc"
)

// parseSignalLine parses the body of an SG_ statement (the line with its
// "SG_ " tag already stripped), per spec.md §4.2's grammar:
//
//	<name> [m<switch-value>|M|m<switch-value>M] : <start>|<size>@<order><sign>
//	    (<factor>,<offset>) [<min>|<max>] "<unit>" <receiver>(,<receiver>)*
func parseSignalLine(rest string) (*dbc.Signal, error) {
	head, body, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("signal line missing ':': %q", rest)
	}
	headFields := strings.Fields(head)
	if len(headFields) == 0 {
		return nil, errors.New("signal line missing name")
	}
	sig := dbc.NewSignal(headFields[0])
	if len(headFields) > 1 {
		mux, switchValue, err := parseMultiplexerToken(headFields[1])
		if err != nil {
			return nil, err
		}
		sig.Multiplexer = dbc.Multiplexing{Kind: mux, SwitchValue: switchValue}
	}

	fields := quoteAwareFields(strings.TrimSpace(body))
	if len(fields) < 4 {
		return nil, errors.Newf("signal line missing fields: %q", rest)
	}

	if err := parseBitLayout(fields[0], sig); err != nil {
		return nil, err
	}
	if sig.BitSize > 64 {
		return nil, errors.Newf("signal %q bit size %d exceeds 64", sig.Name, sig.BitSize)
	}

	factor, offset, err := parseParenPair(fields[1])
	if err != nil {
		return nil, errors.Wrapf(err, "signal %q factor/offset", sig.Name)
	}
	sig.Factor = factor
	sig.Offset = offset

	min, max, err := parseBracketPair(fields[2])
	if err != nil {
		return nil, errors.Wrapf(err, "signal %q min/max", sig.Name)
	}
	sig.Minimum = min
	sig.Maximum = max

	sig.Unit = fields[3]

	receiversRaw := strings.Join(fields[4:], " ")
	receivers := splitTopLevel(receiversRaw, ',')
	if len(receivers) == 1 && receivers[0] == "Vector__XXX" {
		receivers = nil
	}
	sig.Receivers = receivers

	return sig, nil
}

// parseMultiplexerToken parses the optional multiplexing token following a
// signal's name: "M" (the switch itself), "m<N>" (multiplexed by value N),
// or "m<N>M" (multiplexed by N and itself a nested switch, i.e. extended
// multiplexing).
func parseMultiplexerToken(tok string) (dbc.MultiplexerKind, uint32, error) {
	if tok == "M" {
		return dbc.MultiplexerIsSwitch, 0, nil
	}
	if !strings.HasPrefix(tok, "m") {
		return dbc.MultiplexerNone, 0, errors.Newf("invalid multiplexer token %q", tok)
	}
	body := strings.TrimPrefix(tok, "m")
	isSwitch := strings.HasSuffix(body, "M")
	body = strings.TrimSuffix(body, "M")
	n, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return dbc.MultiplexerNone, 0, errors.Wrapf(err, "invalid multiplexer value %q", tok)
	}
	if isSwitch {
		return dbc.MultiplexerIsMultiplexedSwitch, uint32(n), nil
	}
	return dbc.MultiplexerIsMultiplexed, uint32(n), nil
}

// parseBitLayout parses "<start>|<size>@<order><sign>" into sig.
func parseBitLayout(tok string, sig *dbc.Signal) error {
	startStr, rest, ok := strings.Cut(tok, "|")
	if !ok {
		return errors.Newf("invalid bit layout %q", tok)
	}
	sizeStr, orderSign, ok := strings.Cut(rest, "@")
	if !ok || len(orderSign) < 2 {
		return errors.Newf("invalid bit layout %q", tok)
	}
	start, err := strconv.ParseUint(startStr, 10, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid start bit %q", startStr)
	}
	size, err := strconv.ParseUint(sizeStr, 10, 16)
	if err != nil {
		return errors.Wrapf(err, "invalid bit size %q", sizeStr)
	}
	order := dbc.ByteOrder(orderSign[0])
	if !order.IsValid() {
		return errors.Newf("invalid byte order %q", string(orderSign[0]))
	}
	sign := dbc.ValueType(orderSign[1])
	if sign != dbc.Signed && sign != dbc.Unsigned {
		return errors.Newf("invalid signedness %q", string(orderSign[1]))
	}
	sig.StartBit = uint16(start)
	sig.BitSize = uint16(size)
	sig.ByteOrder = order
	sig.ValueType = sign
	return nil
}

// parseParenPair parses "(<a>,<b>)" into two float64s.
func parseParenPair(tok string) (a, b float64, err error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "("), ")")
	left, right, ok := strings.Cut(inner, ",")
	if !ok {
		return 0, 0, errors.Newf("invalid pair %q", tok)
	}
	a, err = strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// parseBracketPair parses "[<a>|<b>]" into two float64s.
func parseBracketPair(tok string) (a, b float64, err error) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tok, "["), "]")
	left, right, ok := strings.Cut(inner, "|")
	if !ok {
		return 0, 0, errors.Newf("invalid range %q", tok)
	}
	a, err = strconv.ParseFloat(strings.TrimSpace(left), 64)
	if err != nil {
		return 0, 0, err
	}
	b, err = strconv.ParseFloat(strings.TrimSpace(right), 64)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
