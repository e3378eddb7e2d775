// Package timezone converts between UTC timestamps and the service region's
// wall clock.
//
// The region's clock is modeled as a fixed offset from UTC (configured via
// APP_UTC_OFFSET_MINUTES, default +330 for UTC+05:30). Bookings are stored in
// UTC; operating-window checks and provider schedules compare against the
// local wall clock, so every such comparison goes through ToLocal first.
//
// A fixed offset cannot represent daylight-saving transitions. The target
// region has none, which is the only reason this is acceptable.
package timezone
