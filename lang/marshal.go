package lang

// Native converts a syntax tree, an expression tree, or a [Value] to plain
// maps, slices, and scalars suitable for JSON or YAML encoding. Every tree
// node becomes a map with a "type" key naming its kind. Other values are
// returned unchanged.
func Native(v any) any {
	switch v := v.(type) {
	case *Node:
		return nodeToNative(v)

	case Value:
		return map[string]any{
			"type":  v.Kind.String(),
			"value": v.String(),
		}

	case *DateTimeExpr:
		return node("DateTime", "date", Native(v.Date), "time", Native(v.Time))

	case *DateExpr:
		return node("Date", "date", Native(v.Date))

	case *TimeExpr:
		return node("Time", "time", Native(v.Time))

	case *InExpr:
		return node("In", "duration", Native(v.Duration))

	case *AgoExpr:
		if v.From == nil {
			return node("Ago", "duration", Native(v.Duration))
		}

		return node("Ago", "duration", Native(v.Duration), "from", Native(v.From))

	case Now:
		return node("Now")

	case RelativeDay:
		return node("RelativeDay", "day", v.String())

	case IsoDate:
		return node("IsoDate", "year", v.Year, "month", v.Month, "day", v.Day)

	case DayMonthYear:
		return node("DayMonthYear", "day", v.Day, "month", monthName(v.Month), "year", v.Year)

	case DayMonth:
		return node("DayMonth", "day", v.Day, "month", monthName(v.Month))

	case RelativeWeekWeekday:
		return node("RelativeWeekWeekday",
			"specifier", v.Specifier.String(), "weekday", weekdayName(v.Weekday))

	case RelativeWeekday:
		return node("RelativeWeekday",
			"specifier", v.Specifier.String(), "weekday", weekdayName(v.Weekday))

	case RelativeUnit:
		return node("RelativeUnit", "specifier", v.Specifier.String(), "unit", v.Unit.String())

	case UpcomingWeekday:
		return node("UpcomingWeekday", "weekday", weekdayName(v.Weekday))

	case OrdinalUnitOf:
		return node("OrdinalUnitOf",
			"ordinal", v.Ordinal.String(),
			"unit", v.Unit.String(),
			"reference", Native(v.Reference))

	case HourMinute:
		return node("HourMinute", "hour", v.Hour, "minute", v.Minute)

	case HourMinuteSecond:
		return node("HourMinuteSecond", "hour", v.Hour, "minute", v.Minute, "second", v.Second)

	case Duration:
		qs := make([]any, len(v))
		for i, q := range v {
			qs[i] = map[string]any{"count": q.Count, "unit": q.Unit.String()}
		}

		return qs

	case MonthYear:
		if v.Year == nil {
			return node("MonthYear", "month", Native(v.Month))
		}

		return node("MonthYear", "month", Native(v.Month), "year", Native(v.Year))

	case AgoRef:
		return node("Ago", "duration", Native(v.Duration))

	case TheUnit:
		return node("TheUnit", "unit", v.Unit.String())

	case CurrentMonth:
		return node("CurrentMonth")

	case AbsoluteMonth:
		return node("AbsoluteMonth", "month", monthName(v.Month))

	case RelativeMonth:
		return node("RelativeMonth", "specifier", v.Specifier.String(), "month", monthName(v.Month))

	case RelativeCurrentMonth:
		return node("RelativeCurrentMonth", "specifier", v.Specifier.String())

	case AbsoluteYear:
		return node("AbsoluteYear", "year", v.Year)

	case RelativeYear:
		return node("RelativeYear", "specifier", v.Specifier.String())

	default:
		return v
	}
}

// node builds a map from a type name and alternating keys and values.
func node(typ string, kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2+1)
	m["type"] = typ

	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = kv[i+1]
	}

	return m
}

func nodeToNative(n *Node) any {
	if n == nil {
		return nil
	}

	if n.Rule.IsTerminal() {
		return map[string]any{
			"rule":   n.Rule.String(),
			"text":   n.Text(),
			"column": n.Token.Column,
		}
	}

	children := make([]any, len(n.Children))
	for i, c := range n.Children {
		children[i] = nodeToNative(c)
	}

	m := map[string]any{
		"rule":      n.Rule.String(),
		"alternate": n.Alt,
	}

	if len(children) > 0 {
		m["children"] = children
	}

	return m
}
