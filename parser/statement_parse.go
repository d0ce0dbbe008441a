package parser

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dbcgo/dbc"
)

// parseLine parses one non-blank DBC line (tag already split off by
// firstField) into a statement. currentMessageID/haveMessage track the
// BO_ block an SG_ line belongs to, the one piece of cross-line state the
// grammar needs outside of NS_'s multi-line form (handled by the caller).
func parseLine(tag, rest string, currentMessageID *uint32, haveMessage *bool) (statement, error) {
	switch tag {
	case "VERSION":
		fields := quoteAwareFields(rest)
		version := ""
		if len(fields) > 0 {
			version = fields[0]
		}
		return versionStmt{version: version}, nil

	case "BS_:":
		return parseBitTiming(rest)

	case "BU_:":
		return nodesStmt{names: strings.Fields(rest)}, nil

	case "VAL_TABLE_":
		return parseValueTable(rest)

	case "BO_":
		stmt, err := parseMessage(rest)
		if err != nil {
			return nil, err
		}
		*currentMessageID = stmt.id
		*haveMessage = true
		return stmt, nil

	case "SG_":
		if !*haveMessage {
			return nil, errors.New("SG_ line outside of a BO_ block")
		}
		sig, err := parseSignalLine(rest)
		if err != nil {
			return nil, err
		}
		return signalStmt{messageID: *currentMessageID, signal: sig}, nil

	case "BO_TX_BU_":
		return parseMessageTransmitters(rest)

	case "EV_":
		return parseEnvVar(rest)

	case "ENVVAR_DATA_":
		return parseEnvVarData(rest)

	case "SGTYPE_":
		return parseSignalTypeStatement(rest)

	case "CM_":
		return parseComment(rest)

	case "BA_DEF_", "BA_DEF_REL_":
		return parseAttributeDef(rest, tag == "BA_DEF_REL_")

	case "BA_DEF_DEF_", "BA_DEF_DEF_REL_":
		return parseAttributeDefault(rest, tag == "BA_DEF_DEF_REL_")

	case "BA_":
		return parseAttributeValue(rest)

	case "BA_REL_":
		return parseAttributeRelation(rest)

	case "VAL_":
		return parseValueDescriptions(rest)

	case "SIG_VALTYPE_":
		return parseSignalValueType(rest)

	case "SIG_GROUP_":
		return parseSignalGroup(rest)

	case "SIG_MUL_VAL_":
		return parseExtendedMultiplexor(rest)

	default:
		return nil, errors.Newf("unrecognized statement tag %q", tag)
	}
}

func parseBitTiming(rest string) (statement, error) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return bitTimingStmt{}, nil
	}
	baudPart, btrPart, _ := strings.Cut(rest, ":")
	var timing dbc.BitTiming
	baudPart = strings.TrimSpace(baudPart)
	if baudPart != "" {
		n, err := strconv.ParseUint(baudPart, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid baudrate %q", baudPart)
		}
		timing.Baudrate = uint32(n)
	}
	btrPart = strings.TrimSpace(btrPart)
	if btrPart != "" {
		parts := splitTopLevel(btrPart, ',')
		if len(parts) > 0 {
			n, err := strconv.ParseUint(parts[0], 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid BTR1 %q", parts[0])
			}
			timing.BTR1 = uint32(n)
		}
		if len(parts) > 1 {
			n, err := strconv.ParseUint(parts[1], 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid BTR2 %q", parts[1])
			}
			timing.BTR2 = uint32(n)
		}
	}
	return bitTimingStmt{timing: timing}, nil
}

func parseValueTable(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) == 0 {
		return nil, errors.New("VAL_TABLE_ missing name")
	}
	descriptions, err := parseValueDescriptionPairs(fields[1:])
	if err != nil {
		return nil, err
	}
	return valueTableStmt{name: fields[0], descriptions: descriptions}, nil
}

func parseValueDescriptionPairs(fields []string) (dbc.ValueDescriptions, error) {
	if len(fields)%2 != 0 {
		return nil, errors.Newf("odd number of value/label tokens: %v", fields)
	}
	descriptions := make(dbc.ValueDescriptions, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		v, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			// negative value descriptions (e.g. on signed signals) are
			// written as plain decimal too; reparse through int64 and
			// reinterpret its bit pattern as the raw uint64 key.
			sv, serr := strconv.ParseInt(fields[i], 10, 64)
			if serr != nil {
				return nil, errors.Wrapf(err, "invalid value description key %q", fields[i])
			}
			v = uint64(sv)
		}
		descriptions = append(descriptions, dbc.ValueDescription{Value: v, Label: fields[i+1]})
	}
	return descriptions, nil
}

func parseMessage(rest string) (messageStmt, error) {
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		return messageStmt{}, errors.Newf("BO_ line missing fields: %q", rest)
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return messageStmt{}, errors.Wrapf(err, "invalid message id %q", fields[0])
	}
	name := strings.TrimSuffix(fields[1], ":")
	size, err := strconv.ParseUint(fields[2], 10, 8)
	if err != nil {
		return messageStmt{}, errors.Wrapf(err, "invalid message size %q", fields[2])
	}
	return messageStmt{id: uint32(id), name: name, size: uint8(size), transmitter: fields[3]}, nil
}

func parseMessageTransmitters(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	idPart, nodesPart, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("BO_TX_BU_ line missing ':': %q", rest)
	}
	id, err := strconv.ParseUint(strings.TrimSpace(idPart), 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid message id %q", idPart)
	}
	return messageTransmittersStmt{messageID: uint32(id), nodes: splitTopLevel(nodesPart, ',')}, nil
}

// parseEnvVar parses:
//
//	EV_ <name>: <type> [<min>|<max>] "<unit>" <initial> <id> <accessType> <node>(,<node>)* ;
func parseEnvVar(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	namePart, body, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("EV_ line missing ':': %q", rest)
	}
	fields := quoteAwareFields(strings.TrimSpace(body))
	if len(fields) < 7 {
		return nil, errors.Newf("EV_ line missing fields: %q", rest)
	}
	ev := dbc.NewEnvironmentVariable(strings.TrimSpace(namePart))
	ev.Type = dbc.EnvVarType(fields[0][0])
	min, max, err := parseBracketPair(fields[1])
	if err != nil {
		return nil, errors.Wrapf(err, "EV_ %q range", ev.Name)
	}
	ev.Minimum = min
	ev.Maximum = max
	ev.Unit = fields[2]
	initial, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "EV_ %q initial value", ev.Name)
	}
	ev.InitialValue = initial
	id, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "EV_ %q id", ev.Name)
	}
	ev.NumericID = uint32(id)
	access, err := strconv.ParseUint(fields[5], 0, 16)
	if err != nil {
		return nil, errors.Wrapf(err, "EV_ %q access type", ev.Name)
	}
	ev.AccessType = dbc.EnvVarAccessType(access)
	nodesRaw := strings.Join(fields[6:], ",")
	nodes := splitTopLevel(nodesRaw, ',')
	if len(nodes) == 1 && nodes[0] == "Vector__XXX" {
		nodes = nil
	}
	ev.AccessNodes = nodes
	return envVarStmt{envVar: ev}, nil
}

func parseEnvVarData(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	namePart, sizePart, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("ENVVAR_DATA_ line missing ':': %q", rest)
	}
	size, err := strconv.ParseUint(strings.TrimSpace(sizePart), 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid ENVVAR_DATA_ size %q", sizePart)
	}
	return envVarDataStmt{name: strings.TrimSpace(namePart), size: uint32(size)}, nil
}

// parseSignalTypeStatement distinguishes SGTYPE_'s two forms: a type
// definition (`SGTYPE_ name : ...`) and a per-signal reference
// (`SGTYPE_ msgId signalName : typeName ;`).
func parseSignalTypeStatement(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	head, body, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("SGTYPE_ line missing ':': %q", rest)
	}
	headFields := strings.Fields(head)
	if len(headFields) == 2 {
		if _, err := strconv.ParseUint(headFields[0], 10, 32); err == nil {
			id, _ := strconv.ParseUint(headFields[0], 10, 32)
			return signalTypeRefStmt{
				messageID:  uint32(id),
				signalName: headFields[1],
				typeName:   strings.TrimSpace(body),
			}, nil
		}
	}
	if len(headFields) != 1 {
		return nil, errors.Newf("SGTYPE_ line malformed: %q", rest)
	}
	fields := quoteAwareFields(strings.TrimSpace(body))
	if len(fields) < 4 {
		return nil, errors.Newf("SGTYPE_ definition missing fields: %q", rest)
	}
	st := &dbc.SignalType{Name: headFields[0]}
	tmp := &dbc.Signal{}
	layout := fields[0]
	if !strings.Contains(layout, "|") {
		layout = "0|" + layout
	}
	if err := parseBitLayout(layout, tmp); err != nil {
		return nil, err
	}
	st.BitSize = tmp.BitSize
	st.ByteOrder = tmp.ByteOrder
	st.ValueType = tmp.ValueType
	factor, offset, err := parseParenPair(fields[1])
	if err != nil {
		return nil, err
	}
	st.Factor, st.Offset = factor, offset
	min, max, err := parseBracketPair(fields[2])
	if err != nil {
		return nil, err
	}
	st.Minimum, st.Maximum = min, max
	st.Unit = fields[3]
	if len(fields) > 4 {
		rest := strings.Join(fields[4:], ",")
		parts := splitTopLevel(rest, ',')
		if len(parts) > 0 {
			if dv, err := strconv.ParseFloat(parts[0], 64); err == nil {
				st.DefaultValue = dv
			}
		}
		if len(parts) > 1 {
			st.ValueTableName = parts[1]
		}
	}
	return signalTypeDefStmt{signalType: st}, nil
}

// parseComment parses one of CM_'s six object-kinded forms, see
// commentTarget.
func parseComment(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) == 0 {
		return nil, errors.New("CM_ line missing content")
	}
	switch fields[0] {
	case "BU_":
		if len(fields) < 3 {
			return nil, errors.Newf("CM_ BU_ line missing fields: %q", rest)
		}
		return commentStmt{
			target: commentTarget{objectType: dbc.AttributeObjectNode, node: fields[1]},
			text:   fields[2],
		}, nil
	case "BO_":
		if len(fields) < 3 {
			return nil, errors.Newf("CM_ BO_ line missing fields: %q", rest)
		}
		id, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid message id %q", fields[1])
		}
		return commentStmt{
			target: commentTarget{objectType: dbc.AttributeObjectMessage, messageID: uint32(id)},
			text:   fields[2],
		}, nil
	case "SG_":
		if len(fields) < 4 {
			return nil, errors.Newf("CM_ SG_ line missing fields: %q", rest)
		}
		id, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid message id %q", fields[1])
		}
		return commentStmt{
			target: commentTarget{objectType: dbc.AttributeObjectSignal, messageID: uint32(id), signalName: fields[2]},
			text:   fields[3],
		}, nil
	case "EV_":
		if len(fields) < 3 {
			return nil, errors.Newf("CM_ EV_ line missing fields: %q", rest)
		}
		return commentStmt{
			target: commentTarget{objectType: dbc.AttributeObjectEnvVar, envVar: fields[1]},
			text:   fields[2],
		}, nil
	default:
		return commentStmt{target: commentTarget{objectType: dbc.AttributeObjectNetwork}, text: fields[0]}, nil
	}
}

var relationObjectTags = map[string]dbc.RelationObjectType{
	"BU_EV_REL_": dbc.RelationControlUnitEnvVar,
	"BU_BO_REL_": dbc.RelationNodeTxMessage,
	"BU_SG_REL_": dbc.RelationNodeMappedRxSignal,
}

var attributeObjectTags = map[string]dbc.AttributeObjectType{
	"BU_": dbc.AttributeObjectNode,
	"BO_": dbc.AttributeObjectMessage,
	"SG_": dbc.AttributeObjectSignal,
	"EV_": dbc.AttributeObjectEnvVar,
}

func parseAttributeDef(rest string, isRelation bool) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) == 0 {
		return nil, errors.New("BA_DEF_ line missing content")
	}
	idx := 0
	objectType := dbc.AttributeObjectNetwork
	var relObjectType dbc.RelationObjectType
	if isRelation {
		rot, ok := relationObjectTags[fields[0]]
		if !ok {
			return nil, errors.Newf("BA_DEF_REL_ unknown object type %q", fields[0])
		}
		relObjectType = rot
		idx = 1
	} else if ot, ok := attributeObjectTags[fields[0]]; ok {
		objectType = ot
		idx = 1
	}
	if idx+1 >= len(fields) {
		return nil, errors.Newf("BA_DEF_ line missing name/type: %q", rest)
	}
	def := &dbc.AttributeDefinition{
		Name:               fields[idx],
		ObjectType:         objectType,
		IsRelation:         isRelation,
		RelationObjectType: relObjectType,
	}
	typeTok := fields[idx+1]
	rem := fields[idx+2:]
	switch typeTok {
	case "INT":
		def.ValueType = dbc.AttributeTypeInt
		if err := setMinMax(def, rem); err != nil {
			return nil, err
		}
	case "HEX":
		def.ValueType = dbc.AttributeTypeHex
		if err := setMinMax(def, rem); err != nil {
			return nil, err
		}
	case "FLOAT":
		def.ValueType = dbc.AttributeTypeFloat
		if err := setMinMax(def, rem); err != nil {
			return nil, err
		}
	case "STRING":
		def.ValueType = dbc.AttributeTypeString
	case "ENUM":
		def.ValueType = dbc.AttributeTypeEnum
		enumRaw := strings.Join(rem, ",")
		def.EnumValues = splitTopLevel(enumRaw, ',')
	default:
		return nil, errors.Newf("BA_DEF_ unknown value type %q", typeTok)
	}
	return attributeDefStmt{def: def}, nil
}

func setMinMax(def *dbc.AttributeDefinition, fields []string) error {
	if len(fields) < 2 {
		return errors.Newf("attribute %q missing min/max", def.Name)
	}
	min, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return errors.Wrapf(err, "attribute %q min", def.Name)
	}
	max, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return errors.Wrapf(err, "attribute %q max", def.Name)
	}
	def.Min, def.Max = min, max
	return nil
}

func parseAttributeDefault(rest string, isRelation bool) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) < 2 {
		return nil, errors.Newf("BA_DEF_DEF_ line missing fields: %q", rest)
	}
	return attributeDefaultStmt{name: fields[0], raw: strings.Join(fields[1:], " "), isRelation: isRelation}, nil
}

func parseAttributeValue(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) < 2 {
		return nil, errors.Newf("BA_ line missing fields: %q", rest)
	}
	name := fields[0]
	remainder := fields[1:]
	target := commentTarget{objectType: dbc.AttributeObjectNetwork}
	if ot, ok := attributeObjectTags[remainder[0]]; ok {
		need := 2
		if ot == dbc.AttributeObjectSignal {
			need = 3
		}
		if len(remainder) < need {
			return nil, errors.Newf("BA_ line missing fields: %q", rest)
		}
		target.objectType = ot
		switch ot {
		case dbc.AttributeObjectNode:
			target.node = remainder[1]
			remainder = remainder[2:]
		case dbc.AttributeObjectMessage:
			id, err := strconv.ParseUint(remainder[1], 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid message id %q", remainder[1])
			}
			target.messageID = uint32(id)
			remainder = remainder[2:]
		case dbc.AttributeObjectSignal:
			id, err := strconv.ParseUint(remainder[1], 10, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid message id %q", remainder[1])
			}
			target.messageID = uint32(id)
			target.signalName = remainder[2]
			remainder = remainder[3:]
		case dbc.AttributeObjectEnvVar:
			target.envVar = remainder[1]
			remainder = remainder[2:]
		}
	}
	if len(remainder) == 0 {
		return nil, errors.Newf("BA_ line missing value: %q", rest)
	}
	raw := strings.Join(remainder, " ")
	return attributeValueStmt{target: target, name: name, raw: raw}, nil
}

func parseAttributeRelation(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) < 3 {
		return nil, errors.Newf("BA_REL_ line missing fields: %q", rest)
	}
	name := fields[0]
	objectType, ok := relationObjectTags[fields[1]]
	if !ok {
		return nil, errors.Newf("BA_REL_ unknown object type %q", fields[1])
	}
	need := 4
	if objectType == dbc.RelationNodeMappedRxSignal {
		need = 5
	}
	if len(fields) < need {
		return nil, errors.Newf("BA_REL_ line missing fields: %q", rest)
	}
	rel := dbc.AttributeRelation{Name: name, ObjectType: objectType}
	idx := 2
	rel.Node = fields[idx]
	idx++
	switch objectType {
	case dbc.RelationControlUnitEnvVar:
		rel.EnvVar = fields[idx]
		idx++
	case dbc.RelationNodeTxMessage:
		id, err := strconv.ParseUint(fields[idx], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid message id %q", fields[idx])
		}
		rel.MessageID = uint32(id)
		idx++
	case dbc.RelationNodeMappedRxSignal:
		id, err := strconv.ParseUint(fields[idx], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid message id %q", fields[idx])
		}
		rel.MessageID = uint32(id)
		idx++
		rel.Signal = fields[idx]
		idx++
	}
	if idx >= len(fields) {
		return nil, errors.Newf("BA_REL_ line missing value: %q", rest)
	}
	raw := strings.Join(fields[idx:], " ")
	return attributeRelationStmt{relation: rel, name: name, raw: raw}, nil
}

func parseValueDescriptions(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := quoteAwareFields(rest)
	if len(fields) < 1 {
		return nil, errors.Newf("VAL_ line missing fields: %q", rest)
	}
	if _, err := strconv.ParseUint(fields[0], 10, 32); err == nil && len(fields) >= 2 {
		id, _ := strconv.ParseUint(fields[0], 10, 32)
		descriptions, err := parseValueDescriptionPairs(fields[2:])
		if err != nil {
			return nil, err
		}
		return valueDescriptionsStmt{
			target:       commentTarget{objectType: dbc.AttributeObjectSignal, messageID: uint32(id), signalName: fields[1]},
			descriptions: descriptions,
		}, nil
	}
	descriptions, err := parseValueDescriptionPairs(fields[1:])
	if err != nil {
		return nil, err
	}
	return valueDescriptionsStmt{
		target:       commentTarget{objectType: dbc.AttributeObjectEnvVar, envVar: fields[0]},
		isEnvVar:     true,
		descriptions: descriptions,
	}, nil
}

func parseSignalValueType(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	head, body, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("SIG_VALTYPE_ line missing ':': %q", rest)
	}
	headFields := strings.Fields(head)
	if len(headFields) != 2 {
		return nil, errors.Newf("SIG_VALTYPE_ line malformed: %q", rest)
	}
	id, err := strconv.ParseUint(headFields[0], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid message id %q", headFields[0])
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.New("SIG_VALTYPE_ line missing type")
	}
	return signalValueTypeStmt{
		messageID:  uint32(id),
		signalName: headFields[1],
		valueType:  dbc.ExtendedValueType(body[0]),
	}, nil
}

func parseSignalGroup(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	head, body, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, errors.Newf("SIG_GROUP_ line missing ':': %q", rest)
	}
	headFields := strings.Fields(head)
	if len(headFields) != 3 {
		return nil, errors.Newf("SIG_GROUP_ line malformed: %q", rest)
	}
	id, err := strconv.ParseUint(headFields[0], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid message id %q", headFields[0])
	}
	repetition, err := strconv.ParseUint(headFields[2], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid repetition count %q", headFields[2])
	}
	group := &dbc.SignalGroup{
		MessageID:       uint32(id),
		Name:            headFields[1],
		RepetitionCount: uint32(repetition),
		SignalNames:     strings.Fields(body),
	}
	return signalGroupStmt{group: group}, nil
}

func parseExtendedMultiplexor(rest string) (statement, error) {
	rest = trimTrailingSemicolon(rest)
	fields := strings.Fields(rest)
	if len(fields) < 4 {
		return nil, errors.Newf("SIG_MUL_VAL_ line missing fields: %q", rest)
	}
	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid message id %q", fields[0])
	}
	rangesRaw := strings.Join(fields[3:], "")
	ranges, err := parseValueRanges(rangesRaw)
	if err != nil {
		return nil, err
	}
	mux := &dbc.ExtendedMultiplexor{SwitchSignalName: fields[2], Ranges: ranges}
	return extendedMultiplexorStmt{messageID: uint32(id), signalName: fields[1], mux: mux}, nil
}

func parseValueRanges(raw string) ([]dbc.ValueRange, error) {
	parts := splitTopLevel(raw, ',')
	ranges := make([]dbc.ValueRange, 0, len(parts))
	for _, p := range parts {
		minStr, maxStr, ok := strings.Cut(p, "-")
		if !ok {
			return nil, errors.Newf("invalid value range %q", p)
		}
		min, err := strconv.ParseUint(minStr, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range min %q", minStr)
		}
		max, err := strconv.ParseUint(maxStr, 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid range max %q", maxStr)
		}
		ranges = append(ranges, dbc.ValueRange{Min: uint32(min), Max: uint32(max)})
	}
	return ranges, nil
}
