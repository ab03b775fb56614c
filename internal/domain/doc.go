// Package domain models NSG (Network Signal Guru) diagnostic dump data.
//
// # Data Source
//
// NSG is an Android drive-test tool that records cellular modem activity
// alongside GPS fixes. Its JSON export is a single object with four
// top-level keys:
//
//	device     handset identifier string
//	starttime  ISO-8601 capture start
//	endtime    ISO-8601 capture end
//	data       array of per-second records
//
// Each record in "data" carries a timestamp plus any combination of a
// GPS "Location" object, a "messages" array of layer-3 signalling
// messages, and an "events" array of modem events.
//
// # Timestamp Conventions
//
// Records and their children carry one or both of "Timestamp" (handset
// wall clock) and "EquipmentTimestamp" (modem clock). Records and modem
// events prefer "Timestamp"; signalling messages prefer
// "EquipmentTimestamp" because that is the clock the modem stamped the
// PDU with. All values are ISO-8601 with optional fractional seconds
// and either a "T" or a space between date and time.
//
// # The Time Key
//
// All correlation happens at one-second granularity through a time key
// formatted as day-of-month plus clock time ("02-15:04:05", e.g.
// "26-14:03:59"). Sub-second precision is truncated. Captures are short
// (minutes to hours), so the day component is enough to keep keys
// unique within a single dump.
//
// # Signalling Categories
//
// Layer-3 messages are tagged with a protocol family: gsm, wcdma, lte,
// nr for access-stratum messages, and emm/esm for the LTE NAS mobility
// and session management layers. Anything else maps to unknown rather
// than failing, since NSG adds categories across releases.
//
// # Location Samples
//
// GPS fixes carry latitude, longitude, accuracy (metres), and speed
// (m/s). Accuracy and speed are rounded to two decimal places on
// ingest; latitude and longitude pass through untouched so no position
// precision is lost. A fix may omit coordinates entirely, in which case
// the corresponding output fields stay empty.
package domain
