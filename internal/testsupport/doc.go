// Package testsupport provides shared helpers for constructing test
// configurations and stores.
package testsupport
