package framecheck

// locate resolves the argument the checks apply to. With no name it is the
// first positional argument (found=false when there are none). With a name,
// a keyword binding wins; otherwise the name's index in the declared
// parameter order selects the positional slot. Calls may legally bind the
// same declared parameter either way, so both paths are needed.
func locate(fn Func, name string, args Args) (value any, found bool, err error) {
	if name == "" {
		if len(args.Positional) == 0 {
			return nil, false, nil
		}
		return args.Positional[0], true, nil
	}

	if v, ok := args.Keyword[name]; ok {
		return v, true, nil
	}

	idx := -1
	for i, param := range fn.Params {
		if param == name {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, false, NewParamResolution(fn.Name, name, "not a declared parameter")
	}
	if idx >= len(args.Positional) {
		return nil, false, NewParamResolution(fn.Name, name, "not supplied positionally or by keyword")
	}
	return args.Positional[idx], true, nil
}
