// Package settlement classifies object keys and derives settlement file
// records from them.
//
// A [PatternSet] decides whether a key is eligible: it must carry a
// recognized extension and a tenant token, must not live under an excluded
// directory and, when an ad-hoc pattern is supplied, must also match it. The
// structural rules are mandatory gates; the ad-hoc pattern only narrows.
//
// A [Transformer] turns an eligible key into an immutable [File] carrying
// the backup key, tenant, streamable classification and a fresh correlation
// ID. Nothing in this package talks to the object store.
package settlement
