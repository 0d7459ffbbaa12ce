// Package gallery serves every donut-ui component, in every variant, as
// server-rendered HTML styled by the current theme.
//
// Pages load the Tailwind browser build and inline the theme as an @theme
// stylesheet, so no compile step is needed to review a theme change. When
// watching is enabled the theme file is reloaded on save and connected
// browsers refresh over the reload websocket.
//
// # Routes
//
//	GET /                      every component and variant
//	GET /components/{name}     one component; options from the query string
//	GET /theme.json            the active theme
//	GET /theme.css             the @theme stylesheet
//	GET /tailwind.config.js    the v3 config export
//	GET /metrics               Prometheus metrics
//	GET /healthz               liveness
//	GET /_donut/reload         reload websocket
package gallery
