// Package script renders the executable install scripts aurgen writes.
//
// A rendered script always opens with a bash interpreter line, strict-mode
// directive, and provenance comments (source transcript, generation time, run
// ID). The body is either a quoted package array plus a single exec line
// invoking the configured helper, or a "no packages detected" notice when
// extraction found nothing. Rendering is pure; callers write the result.
package script
