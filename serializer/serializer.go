// Package serializer emits canonical DBC text from a dbc.Network, in the
// fixed block order spec.md §4.3 defines so that round-tripping a canonical
// file is byte-identical.
package serializer

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dbcgo/dbc"
)

// emitter wraps a bufio.Writer, latching the first write error so every
// printf/println call site can ignore errors and a single check at the end
// of Emit reports them.
type emitter struct {
	w   *bufio.Writer
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}

// Emit writes net to w as canonical DBC text. The returned error is non-nil
// only for an underlying write failure. Emit does not check attribute values
// against net's attribute definitions: every stored value is written as is,
// and the returned Diagnostics is always empty.
func Emit(w io.Writer, net *dbc.Network) (dbc.Diagnostics, error) {
	var diags dbc.Diagnostics
	e := &emitter{w: bufio.NewWriter(w)}

	writeVersion(e, net)
	writeNewSymbols(e, net)
	writeBitTiming(e, net)
	writeNodes(e, net)
	writeValueTables(e, net)
	writeMessages(e, net)
	writeMessageTransmitters(e, net)
	writeEnvVars(e, net)
	writeSignalTypes(e, net)
	writeComments(e, net)
	writeAttributeDefs(e, net)
	writeAttributeDefaults(e, net)
	diags = append(diags, writeAttributeValues(e, net)...)
	writeValueDescriptions(e, net)
	writeSignalValueTypes(e, net)
	writeSignalGroups(e, net)
	writeExtendedMultiplexors(e, net)

	if e.err != nil {
		return diags, errors.Wrap(e.err, "writing DBC output")
	}
	if err := e.w.Flush(); err != nil {
		return diags, errors.Wrap(err, "flushing DBC output")
	}
	return diags, nil
}

func writeVersion(e *emitter, net *dbc.Network) {
	e.printf("VERSION %s\n", quote(net.Version))
	e.println("")
}

func writeNewSymbols(e *emitter, net *dbc.Network) {
	e.println("NS_ :")
	for _, sym := range net.NewSymbols {
		e.printf("    %s\n", sym)
	}
	e.println("")
}

func writeBitTiming(e *emitter, net *dbc.Network) {
	if net.BitTiming.IsZero() {
		e.println("BS_:")
	} else {
		e.printf("BS_: %d:%d,%d\n", net.BitTiming.Baudrate, net.BitTiming.BTR1, net.BitTiming.BTR2)
	}
	e.println("")
}

func writeNodes(e *emitter, net *dbc.Network) {
	e.printf("BU_: %s\n", joinNames(net.Nodes.Keys()))
	e.println("")
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += " "
		}
		out += n
	}
	return out
}

func writeValueTables(e *emitter, net *dbc.Network) {
	names := net.ValueTables.Keys()
	sort.Strings(names)
	for _, name := range names {
		vt, _ := net.LookupValueTable(name)
		e.printf("VAL_TABLE_ %s %s;\n", vt.Name, formatValueDescriptions(vt.Descriptions))
	}
}

func formatValueDescriptions(vds dbc.ValueDescriptions) string {
	out := ""
	for i, vd := range vds {
		if i > 0 {
			out += " "
		}
		out += strconv.FormatUint(vd.Value, 10) + " " + quote(vd.Label)
	}
	return out
}

func writeMessages(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		e.printf("BO_ %d %s: %d %s\n", msg.ID, msg.Name, msg.Size, msg.Transmitter)
		for _, sig := range msg.Signals.Values() {
			e.printf(" SG_ %s%s : %s\n", sig.Name, formatMultiplexer(sig.Multiplexer), formatSignalBody(sig))
		}
		e.println("")
	}
}

func formatMultiplexer(m dbc.Multiplexing) string {
	switch m.Kind {
	case dbc.MultiplexerIsSwitch:
		return " M"
	case dbc.MultiplexerIsMultiplexed:
		return fmt.Sprintf(" m%d", m.SwitchValue)
	case dbc.MultiplexerIsMultiplexedSwitch:
		return fmt.Sprintf(" m%dM", m.SwitchValue)
	default:
		return ""
	}
}

func formatSignalBody(sig *dbc.Signal) string {
	return fmt.Sprintf("%d|%d@%c%c (%s,%s) [%s|%s] %s %s",
		sig.StartBit, sig.BitSize, byte(sig.ByteOrder), byte(sig.ValueType),
		formatFloat(sig.Factor), formatFloat(sig.Offset),
		formatFloat(sig.Minimum), formatFloat(sig.Maximum),
		quote(sig.Unit), formatReceivers(sig.Receivers))
}

func writeMessageTransmitters(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		if len(msg.AdditionalTransmitters) == 0 {
			continue
		}
		e.printf("BO_TX_BU_ %d : %s;\n", msg.ID, formatReceivers(msg.AdditionalTransmitters))
	}
}

func writeEnvVars(e *emitter, net *dbc.Network) {
	names := net.EnvVars.Keys()
	sort.Strings(names)
	for _, name := range names {
		ev, _ := net.LookupEnvVar(name)
		e.printf("EV_ %s: %c [%s|%s] %s %s %d %d %s;\n",
			ev.Name, byte(ev.Type),
			formatFloat(ev.Minimum), formatFloat(ev.Maximum),
			quote(ev.Unit), formatFloat(ev.InitialValue),
			ev.NumericID, uint16(ev.AccessType), formatReceivers(ev.AccessNodes))
	}
	for _, name := range names {
		ev, _ := net.LookupEnvVar(name)
		if ev.Type != dbc.EnvVarData {
			continue
		}
		e.printf("ENVVAR_DATA_ %s: %d;\n", ev.Name, ev.DataSize)
	}
}

func writeSignalTypes(e *emitter, net *dbc.Network) {
	names := net.SignalTypes.Keys()
	sort.Strings(names)
	for _, name := range names {
		st, _ := net.LookupSignalType(name)
		e.printf("SGTYPE_ %s : %d@%c%c (%s,%s) [%s|%s] %s %s, %s;\n",
			st.Name, st.BitSize, byte(st.ByteOrder), byte(st.ValueType),
			formatFloat(st.Factor), formatFloat(st.Offset),
			formatFloat(st.Minimum), formatFloat(st.Maximum),
			quote(st.Unit), formatFloat(st.DefaultValue), st.ValueTableName)
	}
	for _, msg := range net.MessagesSortedByID() {
		for _, sig := range msg.Signals.Values() {
			if sig.SignalTypeRef == "" {
				continue
			}
			e.printf("SGTYPE_ %d %s : %s;\n", msg.ID, sig.Name, sig.SignalTypeRef)
		}
	}
}

func writeComments(e *emitter, net *dbc.Network) {
	if net.Comment != "" {
		e.printf("CM_ %s;\n", quote(net.Comment))
	}
	for _, name := range net.Nodes.Keys() {
		node, _ := net.LookupNode(name)
		if node.Comment != "" {
			e.printf("CM_ BU_ %s %s;\n", node.Name, quote(node.Comment))
		}
	}
	for _, msg := range net.MessagesSortedByID() {
		if msg.Comment != "" {
			e.printf("CM_ BO_ %d %s;\n", msg.ID, quote(msg.Comment))
		}
		for _, sig := range msg.Signals.Values() {
			if sig.Comment != "" {
				e.printf("CM_ SG_ %d %s %s;\n", msg.ID, sig.Name, quote(sig.Comment))
			}
		}
	}
	names := net.EnvVars.Keys()
	sort.Strings(names)
	for _, name := range names {
		ev, _ := net.LookupEnvVar(name)
		if ev.Comment != "" {
			e.printf("CM_ EV_ %s %s;\n", ev.Name, quote(ev.Comment))
		}
	}
}

func writeAttributeDefs(e *emitter, net *dbc.Network) {
	for _, name := range net.AttributeDefinitions.Keys() {
		def, _ := net.LookupAttributeDefinition(name)
		tag := "BA_DEF_"
		prefix := objectTypePrefix(def.ObjectType)
		if def.IsRelation {
			tag = "BA_DEF_REL_"
			prefix = def.RelationObjectType.String() + " "
		}
		e.printf("%s %s%s %s%s;\n", tag, prefix, quote(def.Name), def.ValueType.String(), formatAttributeDefBody(def))
	}
}

func objectTypePrefix(ot dbc.AttributeObjectType) string {
	if ot == dbc.AttributeObjectNetwork {
		return ""
	}
	return ot.String() + " "
}

func formatAttributeDefBody(def *dbc.AttributeDefinition) string {
	switch def.ValueType {
	case dbc.AttributeTypeInt, dbc.AttributeTypeHex, dbc.AttributeTypeFloat:
		return fmt.Sprintf(" %s %s", formatFloat(def.Min), formatFloat(def.Max))
	case dbc.AttributeTypeEnum:
		out := ""
		for i, v := range def.EnumValues {
			if i > 0 {
				out += ","
			}
			out += quote(v)
		}
		return " " + out
	default:
		return ""
	}
}

func writeAttributeDefaults(e *emitter, net *dbc.Network) {
	for _, name := range net.AttributeDefaults.Keys() {
		v, _ := net.AttributeDefaults.Get(name)
		e.printf("BA_DEF_DEF_ %s %s;\n", quote(v.Name), formatAttributeValue(v))
	}
}

func formatAttributeValue(v *dbc.AttributeValue) string {
	switch v.Kind {
	case dbc.AttributeValueInt:
		return strconv.FormatInt(v.Int, 10)
	case dbc.AttributeValueHex:
		return strconv.FormatUint(v.Hex, 10)
	case dbc.AttributeValueFloat:
		return formatFloat(v.Float)
	case dbc.AttributeValueString:
		return quote(v.String)
	case dbc.AttributeValueEnum:
		return strconv.FormatUint(uint64(v.Enum), 10)
	default:
		return ""
	}
}

func writeAttributeValues(e *emitter, net *dbc.Network) dbc.Diagnostics {
	var diags dbc.Diagnostics
	for _, name := range net.NetworkAttributes.Keys() {
		v, _ := net.NetworkAttributes.Get(name)
		e.printf("BA_ %s %s;\n", quote(v.Name), formatAttributeValue(v))
	}
	for _, name := range net.Nodes.Keys() {
		node, _ := net.LookupNode(name)
		for _, v := range sortedAttributeValues(node.AttributeValues) {
			e.printf("BA_ %s BU_ %s %s;\n", quote(v.Name), node.Name, formatAttributeValue(v))
		}
	}
	for _, msg := range net.MessagesSortedByID() {
		for _, v := range sortedAttributeValues(msg.AttributeValues) {
			e.printf("BA_ %s BO_ %d %s;\n", quote(v.Name), msg.ID, formatAttributeValue(v))
		}
		for _, sig := range msg.Signals.Values() {
			for _, v := range sortedAttributeValues(sig.AttributeValues) {
				e.printf("BA_ %s SG_ %d %s %s;\n", quote(v.Name), msg.ID, sig.Name, formatAttributeValue(v))
			}
		}
	}
	names := net.EnvVars.Keys()
	sort.Strings(names)
	for _, name := range names {
		ev, _ := net.LookupEnvVar(name)
		for _, v := range sortedAttributeValues(ev.AttributeValues) {
			e.printf("BA_ %s EV_ %s %s;\n", quote(v.Name), ev.Name, formatAttributeValue(v))
		}
	}
	for _, rel := range net.AttributeRelations.All() {
		e.printf("BA_REL_ %s %s %s%s;\n", quote(rel.Name), rel.ObjectType.String(), formatRelationTarget(rel), formatAttributeValue(rel.Value))
	}
	return diags
}

func formatRelationTarget(rel dbc.AttributeRelation) string {
	switch rel.ObjectType {
	case dbc.RelationControlUnitEnvVar:
		return fmt.Sprintf("%s %s ", rel.Node, rel.EnvVar)
	case dbc.RelationNodeTxMessage:
		return fmt.Sprintf("%s %d ", rel.Node, rel.MessageID)
	case dbc.RelationNodeMappedRxSignal:
		return fmt.Sprintf("%s %d %s ", rel.Node, rel.MessageID, rel.Signal)
	default:
		return rel.Node + " "
	}
}

func sortedAttributeValues(m map[string]*dbc.AttributeValue) []*dbc.AttributeValue {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*dbc.AttributeValue, 0, len(names))
	for _, name := range names {
		out = append(out, m[name])
	}
	return out
}

func writeValueDescriptions(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		for _, sig := range msg.Signals.Values() {
			if len(sig.ValueDescriptions) == 0 {
				continue
			}
			e.printf("VAL_ %d %s %s;\n", msg.ID, sig.Name, formatValueDescriptions(sig.ValueDescriptions))
		}
	}
	names := net.EnvVars.Keys()
	sort.Strings(names)
	for _, name := range names {
		ev, _ := net.LookupEnvVar(name)
		if len(ev.ValueDescriptions) == 0 {
			continue
		}
		e.printf("VAL_ %s %s;\n", ev.Name, formatValueDescriptions(ev.ValueDescriptions))
	}
}

func writeSignalValueTypes(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		for _, sig := range msg.Signals.Values() {
			if sig.ExtendedValueType == dbc.ValueTypeUndefined {
				continue
			}
			e.printf("SIG_VALTYPE_ %d %s : %c;\n", msg.ID, sig.Name, byte(sig.ExtendedValueType))
		}
	}
}

func writeSignalGroups(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		for _, group := range msg.SignalGroups.Values() {
			e.printf("SIG_GROUP_ %d %s %d : %s;\n", msg.ID, group.Name, group.RepetitionCount, joinNames(group.SignalNames))
		}
	}
}

func writeExtendedMultiplexors(e *emitter, net *dbc.Network) {
	for _, msg := range net.MessagesSortedByID() {
		for _, sig := range msg.Signals.Values() {
			switchNames := make([]string, 0, len(sig.ExtendedMultiplexors))
			for name := range sig.ExtendedMultiplexors {
				switchNames = append(switchNames, name)
			}
			sort.Strings(switchNames)
			for _, name := range switchNames {
				mux := sig.ExtendedMultiplexors[name]
				e.printf("SIG_MUL_VAL_ %d %s %s %s;\n", msg.ID, sig.Name, mux.SwitchSignalName, formatValueRanges(mux.Ranges))
			}
		}
	}
}

func formatValueRanges(ranges []dbc.ValueRange) string {
	out := ""
	for i, r := range ranges {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d-%d", r.Min, r.Max)
	}
	return out
}
