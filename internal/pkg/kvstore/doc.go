// Package kvstore provides the flat string key-value store used to persist
// credentials on the device.
//
// Values are stored as-is: no encryption, no namespacing, no retries. A
// missing key is reported as goerror.ErrNotFound.
package kvstore
