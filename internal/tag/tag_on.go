//go:build rtsetdebug

package tag

const debug = true
