package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	buttonType string
	attributes []g.Node
}

// withHref makes the button a link
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	cfg := &buttonConfig{}
	for _, option := range options {
		option(cfg)
	}

	attrs := []g.Node{Class(baseClass)}
	if cfg.buttonType != "" {
		attrs = append(attrs, Type(cfg.buttonType))
	}
	attrs = append(attrs, cfg.attributes...)
	attrs = append(attrs, g.Text(text))

	if cfg.href != "" {
		return A(append([]g.Node{Href(cfg.href)}, attrs...)...)
	}
	return Button(attrs...)
}

// button creates a primary button (blue background)
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded inline-block bg-blue-500 text-white hover:bg-blue-600", options...)
}

func buttonSecondary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded inline-block text-blue-500 hover:underline", options...)
}

func buttonDanger(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded inline-block bg-red-500 text-white hover:bg-red-600", options...)
}
