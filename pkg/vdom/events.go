package vdom

// On attaches handler to the named DOM event, given without the "on" prefix.
func On(name string, handler any) EventHandler {
	return EventHandler{Event: "on" + name, Handler: handler}
}

// OnClick attaches a click handler.
func OnClick(handler any) EventHandler { return On("click", handler) }

// OnInput fires on every edit of an input's value.
func OnInput(handler any) EventHandler { return On("input", handler) }

// OnChange fires when an input's value is committed.
func OnChange(handler any) EventHandler { return On("change", handler) }

func OnFocus(handler any) EventHandler   { return On("focus", handler) }
func OnBlur(handler any) EventHandler    { return On("blur", handler) }
func OnKeyDown(handler any) EventHandler { return On("keydown", handler) }
