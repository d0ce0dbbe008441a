package parser

import (
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dbcgo/dbc"
	"github.com/dbcgo/dbc/internal/utils"
)

// Option configures a Parse call.
type Option func(*config)

type config struct {
	diagnostics dbc.DiagnosticSink
	progress    dbc.ProgressSink
}

// WithDiagnosticSink streams every diagnostic to sink as parsing proceeds,
// in addition to the batch Parse returns.
func WithDiagnosticSink(sink dbc.DiagnosticSink) Option {
	return func(c *config) { c.diagnostics = sink }
}

// WithProgressSink reports coarse-grained (bytesConsumed, bytesTotal)
// checkpoints to sink as parsing proceeds.
func WithProgressSink(sink dbc.ProgressSink) Option {
	return func(c *config) { c.progress = sink }
}

type statementAt struct {
	stmt statement
	line int
}

// Parse reads a complete DBC source document from r and builds a
// dbc.Network from it. The returned error is non-nil only for I/O failures
// reading r; malformed or inconsistent DBC content is instead reported
// through the returned dbc.Diagnostics, never by a non-nil error. Pass 1
// (structural declarations) is applied as each line is scanned; pass 2
// (attachments, which may reference an entity declared later in the file)
// is collected and applied only after the whole file has been scanned, so
// that every pass-1 entity already exists.
func Parse(r io.Reader, opts ...Option) (*dbc.Network, dbc.Diagnostics, error) {
	cfg := config{diagnostics: dbc.NopDiagnosticSink, progress: dbc.NopProgressSink}
	for _, opt := range opts {
		opt(&cfg)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reading DBC source")
	}

	lines := splitLines(data)
	net := dbc.NewNetwork()
	var diags dbc.Diagnostics

	report := func(d dbc.Diagnostic) {
		diags = append(diags, d)
		cfg.diagnostics.Handle(d)
	}

	var pass2 []statementAt
	var currentMessageID uint32
	var haveMessage bool

	total := int64(len(data))
	var consumed int64

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		consumed += int64(len(line)) + 1
		cfg.progress.Progress(consumed, total)

		if strings.TrimSpace(line) == "" {
			continue
		}
		tag, rest := firstField(line)

		if tag == "NS_" {
			i = consumeNewSymbols(lines, i, net)
			continue
		}

		stmt, err := parseLine(tag, rest, &currentMessageID, &haveMessage)
		if err != nil {
			report(dbc.Diagnostic{
				Status:  dbc.NewStatus(dbc.KindErrParseError),
				Line:    i + 1,
				Object:  utils.FormatSpaces(line),
				Message: err.Error(),
			})
			continue
		}

		if stmt.pass() == 1 {
			applyPass1(net, stmt, i+1, report)
		} else {
			pass2 = append(pass2, statementAt{stmt: stmt, line: i + 1})
		}
	}

	for _, sa := range pass2 {
		applyPass2(net, sa.stmt, sa.line, report)
	}

	return net, diags, nil
}

// consumeNewSymbols reads the NS_ block starting at lines[i] (the "NS_ :"
// header line) together with every following indented symbol line,
// registering the symbol names on net. It returns the index of the last
// line it consumed, so the caller's loop variable can resume after it.
func consumeNewSymbols(lines []string, i int, net *dbc.Network) int {
	j := i + 1
	var symbols []string
	for j < len(lines) {
		line := lines[j]
		if strings.TrimSpace(line) == "" {
			break
		}
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			break
		}
		symbols = append(symbols, strings.TrimSpace(line))
		j++
	}
	net.NewSymbols = symbols
	return j - 1
}

func applyPass1(net *dbc.Network, stmt statement, line int, report func(dbc.Diagnostic)) {
	switch s := stmt.(type) {
	case versionStmt:
		net.Version = s.version
	case bitTimingStmt:
		net.BitTiming = s.timing
	case nodesStmt:
		for _, name := range s.names {
			net.AddNode(dbc.NewNode(name))
		}
	case valueTableStmt:
		net.AddValueTable(&dbc.ValueTable{Name: s.name, Descriptions: s.descriptions})
	case messageStmt:
		msg := dbc.NewMessage(s.id, s.name, s.size)
		msg.Transmitter = s.transmitter
		net.AddMessage(msg)
	case signalStmt:
		msg, ok := net.LookupMessage(s.messageID)
		if !ok {
			report(dbc.Diagnostic{
				Status:  dbc.NewStatus(dbc.KindWarnDanglingReference),
				Line:    line,
				Object:  s.signal.Name,
				Message: "SG_ line references an undeclared message",
			})
			return
		}
		msg.AddSignal(s.signal)
	case messageTransmittersStmt:
		msg, ok := net.LookupMessage(s.messageID)
		if !ok {
			report(dbc.Diagnostic{
				Status:  dbc.NewStatus(dbc.KindWarnDanglingReference),
				Line:    line,
				Message: "BO_TX_BU_ line references an undeclared message",
			})
			return
		}
		msg.AdditionalTransmitters = s.nodes
	case envVarStmt:
		net.AddEnvVar(s.envVar)
	case envVarDataStmt:
		ev, ok := net.LookupEnvVar(s.name)
		if !ok {
			report(dbc.Diagnostic{
				Status:  dbc.NewStatus(dbc.KindWarnDanglingReference),
				Line:    line,
				Object:  s.name,
				Message: "ENVVAR_DATA_ line references an undeclared environment variable",
			})
			return
		}
		ev.DataSize = s.size
		ev.Type = dbc.EnvVarData
	case signalTypeDefStmt:
		net.AddSignalType(s.signalType)
	case signalTypeRefStmt:
		sig, ok := net.LookupSignal(s.messageID, s.signalName)
		if !ok {
			report(dbc.Diagnostic{
				Status:  dbc.NewStatus(dbc.KindWarnDanglingReference),
				Line:    line,
				Object:  s.signalName,
				Message: "SGTYPE_ reference names an undeclared signal",
			})
			return
		}
		sig.SignalTypeRef = s.typeName
	case attributeDefStmt:
		net.AddAttributeDefinition(s.def)
	}
}

func applyPass2(net *dbc.Network, stmt statement, line int, report func(dbc.Diagnostic)) {
	switch s := stmt.(type) {
	case commentStmt:
		applyComment(net, s, line, report)
	case attributeDefaultStmt:
		applyAttributeDefault(net, s, line, report)
	case attributeValueStmt:
		applyAttributeValue(net, s, line, report)
	case attributeRelationStmt:
		applyAttributeRelation(net, s, line, report)
	case valueDescriptionsStmt:
		applyValueDescriptions(net, s, line, report)
	case signalValueTypeStmt:
		sig, ok := net.LookupSignal(s.messageID, s.signalName)
		if !ok {
			report(danglingRef(line, s.signalName, "SIG_VALTYPE_"))
			return
		}
		sig.ExtendedValueType = s.valueType
	case signalGroupStmt:
		msg, ok := net.LookupMessage(s.group.MessageID)
		if !ok {
			report(danglingRef(line, s.group.Name, "SIG_GROUP_"))
			return
		}
		msg.SignalGroups.Set(s.group.Name, s.group)
	case extendedMultiplexorStmt:
		sig, ok := net.LookupSignal(s.messageID, s.signalName)
		if !ok {
			report(danglingRef(line, s.signalName, "SIG_MUL_VAL_"))
			return
		}
		sig.ExtendedMultiplexors[s.mux.SwitchSignalName] = s.mux
	}
}

func danglingRef(line int, object, tag string) dbc.Diagnostic {
	return dbc.Diagnostic{
		Status:  dbc.NewStatus(dbc.KindWarnDanglingReference),
		Line:    line,
		Object:  object,
		Message: tag + " references an undeclared object",
	}
}

func applyComment(net *dbc.Network, s commentStmt, line int, report func(dbc.Diagnostic)) {
	t := s.target
	switch t.objectType {
	case dbc.AttributeObjectNetwork:
		net.Comment = s.text
	case dbc.AttributeObjectNode:
		node, ok := net.LookupNode(t.node)
		if !ok {
			report(danglingRef(line, t.node, "CM_ BU_"))
			return
		}
		node.Comment = s.text
	case dbc.AttributeObjectMessage:
		msg, ok := net.LookupMessage(t.messageID)
		if !ok {
			report(danglingRef(line, strconv.FormatUint(uint64(t.messageID), 10), "CM_ BO_"))
			return
		}
		msg.Comment = s.text
	case dbc.AttributeObjectSignal:
		sig, ok := net.LookupSignal(t.messageID, t.signalName)
		if !ok {
			report(danglingRef(line, t.signalName, "CM_ SG_"))
			return
		}
		sig.Comment = s.text
	case dbc.AttributeObjectEnvVar:
		ev, ok := net.LookupEnvVar(t.envVar)
		if !ok {
			report(danglingRef(line, t.envVar, "CM_ EV_"))
			return
		}
		ev.Comment = s.text
	}
}

// parseAttributeRaw resolves the free-form token(s) a BA_/BA_DEF_DEF_/BA_REL_
// line carries for an attribute into a typed value, per def.ValueType. It
// mirrors NewAttributeValue's dispatch but additionally parses the raw
// string a statement line actually carries.
func parseAttributeRaw(def *dbc.AttributeDefinition, raw string) (*dbc.AttributeValue, error) {
	raw = strings.TrimSpace(raw)
	switch def.ValueType {
	case dbc.AttributeTypeInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q int value %q", def.Name, raw)
		}
		return dbc.NewAttributeValue(def, raw, n), nil
	case dbc.AttributeTypeHex:
		n, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q hex value %q", def.Name, raw)
		}
		return dbc.NewAttributeValue(def, raw, n), nil
	case dbc.AttributeTypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "attribute %q float value %q", def.Name, raw)
		}
		return dbc.NewAttributeValue(def, raw, f), nil
	case dbc.AttributeTypeString:
		return dbc.NewAttributeValue(def, raw, nil), nil
	case dbc.AttributeTypeEnum:
		if n, err := strconv.ParseUint(raw, 10, 32); err == nil {
			return dbc.NewAttributeValue(def, raw, uint32(n)), nil
		}
		for idx, label := range def.EnumValues {
			if label == raw {
				return dbc.NewAttributeValue(def, raw, uint32(idx)), nil
			}
		}
		return nil, errors.Newf("attribute %q enum value %q not in definition", def.Name, raw)
	default:
		return nil, errors.Newf("attribute %q has unknown value type", def.Name)
	}
}

func applyAttributeDefault(net *dbc.Network, s attributeDefaultStmt, line int, report func(dbc.Diagnostic)) {
	def, ok := net.LookupAttributeDefinition(s.name)
	if !ok {
		report(danglingRef(line, s.name, "BA_DEF_DEF_"))
		return
	}
	v, err := parseAttributeRaw(def, s.raw)
	if err != nil {
		report(dbc.Diagnostic{Status: dbc.NewStatus(dbc.KindErrParseError), Line: line, Object: s.name, Message: err.Error()})
		return
	}
	net.SetAttributeDefault(v)
}

func applyAttributeValue(net *dbc.Network, s attributeValueStmt, line int, report func(dbc.Diagnostic)) {
	def, ok := net.LookupAttributeDefinition(s.name)
	if !ok {
		report(dbc.Diagnostic{
			Status:  dbc.NewStatus(dbc.KindWarnUnknownAttribute),
			Line:    line,
			Object:  s.name,
			Message: "BA_ references an undeclared attribute definition",
		})
		return
	}
	v, err := parseAttributeRaw(def, s.raw)
	if err != nil {
		report(dbc.Diagnostic{Status: dbc.NewStatus(dbc.KindErrParseError), Line: line, Object: s.name, Message: err.Error()})
		return
	}

	t := s.target
	switch t.objectType {
	case dbc.AttributeObjectNetwork:
		net.SetNetworkAttribute(v)
	case dbc.AttributeObjectNode:
		node, ok := net.LookupNode(t.node)
		if !ok {
			report(danglingRef(line, t.node, "BA_ BU_"))
			return
		}
		node.AttributeValues[v.Name] = v
	case dbc.AttributeObjectMessage:
		msg, ok := net.LookupMessage(t.messageID)
		if !ok {
			report(danglingRef(line, strconv.FormatUint(uint64(t.messageID), 10), "BA_ BO_"))
			return
		}
		msg.AttributeValues[v.Name] = v
	case dbc.AttributeObjectSignal:
		sig, ok := net.LookupSignal(t.messageID, t.signalName)
		if !ok {
			report(danglingRef(line, t.signalName, "BA_ SG_"))
			return
		}
		sig.AttributeValues[v.Name] = v
	case dbc.AttributeObjectEnvVar:
		ev, ok := net.LookupEnvVar(t.envVar)
		if !ok {
			report(danglingRef(line, t.envVar, "BA_ EV_"))
			return
		}
		ev.AttributeValues[v.Name] = v
	}
}

func applyAttributeRelation(net *dbc.Network, s attributeRelationStmt, line int, report func(dbc.Diagnostic)) {
	def, ok := net.LookupAttributeDefinition(s.name)
	if !ok {
		report(dbc.Diagnostic{
			Status:  dbc.NewStatus(dbc.KindWarnUnknownAttribute),
			Line:    line,
			Object:  s.name,
			Message: "BA_REL_ references an undeclared attribute definition",
		})
		return
	}
	if _, ok := net.LookupNode(s.relation.Node); !ok {
		report(danglingRef(line, s.relation.Node, "BA_REL_"))
		return
	}
	switch s.relation.ObjectType {
	case dbc.RelationControlUnitEnvVar:
		if _, ok := net.LookupEnvVar(s.relation.EnvVar); !ok {
			report(danglingRef(line, s.relation.EnvVar, "BA_REL_ BU_EV_REL_"))
			return
		}
	case dbc.RelationNodeTxMessage:
		if _, ok := net.LookupMessage(s.relation.MessageID); !ok {
			report(danglingRef(line, strconv.FormatUint(uint64(s.relation.MessageID), 10), "BA_REL_ BU_BO_REL_"))
			return
		}
	case dbc.RelationNodeMappedRxSignal:
		if _, ok := net.LookupSignal(s.relation.MessageID, s.relation.Signal); !ok {
			report(danglingRef(line, s.relation.Signal, "BA_REL_ BU_SG_REL_"))
			return
		}
	}
	v, err := parseAttributeRaw(def, s.raw)
	if err != nil {
		report(dbc.Diagnostic{Status: dbc.NewStatus(dbc.KindErrParseError), Line: line, Object: s.name, Message: err.Error()})
		return
	}
	rel := s.relation
	rel.Value = v
	net.AddAttributeRelation(rel)
}

func applyValueDescriptions(net *dbc.Network, s valueDescriptionsStmt, line int, report func(dbc.Diagnostic)) {
	if s.isEnvVar {
		ev, ok := net.LookupEnvVar(s.target.envVar)
		if !ok {
			report(danglingRef(line, s.target.envVar, "VAL_ EV_"))
			return
		}
		ev.ValueDescriptions = s.descriptions
		return
	}
	sig, ok := net.LookupSignal(s.target.messageID, s.target.signalName)
	if !ok {
		report(danglingRef(line, s.target.signalName, "VAL_ SG_"))
		return
	}
	sig.ValueDescriptions = s.descriptions
}
