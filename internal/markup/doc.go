// Package markup isolates all character escaping and lightweight-markup
// translation as pure functions shared by the exporters.
//
// Keeping these rules in one place is deliberate: divergent escaping
// across formats is the most likely source of injection-style
// corruption bugs, so no exporter carries its own copy.
package markup
