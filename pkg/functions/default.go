// pkg/functions/default.go
package functions

// Default is the process-wide registry the top-level helpers target.
var Default = New()

// HTTP registers fn on Default under kind "http". Duplicate names panic:
// duplicate registration is a setup-time defect, not a runtime condition.
func HTTP(name string, fn HTTPFunction) { Default.MustRegister(name, KindHTTP, fn) }

// Event registers fn on Default under kind "event".
func Event(name string, fn EventFunction) { Default.MustRegister(name, KindEvent, fn) }

// CloudEvent registers fn on Default under kind "cloud_event".
func CloudEvent(name string, fn CloudEventFunction) { Default.MustRegister(name, KindCloudEvent, fn) }
