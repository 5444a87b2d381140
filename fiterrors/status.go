// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package fiterrors defines the closed Status enumeration returned by
// every public operation, along with the propagation-policy
// classification of which statuses are fatal to the validation cache.
// A Status is returned alongside a Go error so callers can either switch
// on the stable status code (mirroring the underlying C API) or
// inspect/unwrap the error chain.
package fiterrors

// Status is the outcome of a parse, crypto check, or license-policy
// decision. StopParse and ContinueParse are internal parser signals and
// must never cross a public API boundary.
type Status int

const (
	OK Status = iota
	InsufficientMemory
	InvalidFeatureID
	InvalidV2C
	AccessDenied
	Error
	RequestNotSupported
	UnknownAlg
	InvalidSignature
	FeatureNotFound
	FeatureFound
	StopParse
	ContinueParse
	InvalidLicgenVersion
	InvalidSigID
	FeatureExpired
	LicCachingError
	InvalidProduct
	InvalidParam1
	InvalidParam2
	InvalidParam3
	InvalidParam4
	InvalidParam5
	InvalidWireType
	InternalError
	InvalidKeysize
	InvalidVendorID
	InvalidProductID
	InvalidContainerID
	LicFieldPresent
	InvalidLicenseType
	ExpirationNotSupported
	InvalidStartDate
	InvalidEndDate
	InactiveLicense
	RtcNotPresent
	NoClockSupport
	InvalidFieldLength
	DataMismatch
	NodeLockingNotSupported
	FingerprintMagicInvalid
	UnknownFingerprintAlg
	FingerprintMismatch
	InvalidDeviceLength
	RsaVerifyFailed
)

var names = map[Status]string{
	OK:                      "OK",
	InsufficientMemory:      "InsufficientMemory",
	InvalidFeatureID:        "InvalidFeatureId",
	InvalidV2C:              "InvalidV2C",
	AccessDenied:            "AccessDenied",
	Error:                   "Error",
	RequestNotSupported:     "RequestNotSupported",
	UnknownAlg:              "UnknownAlg",
	InvalidSignature:        "InvalidSignature",
	FeatureNotFound:         "FeatureNotFound",
	FeatureFound:            "FeatureFound",
	StopParse:               "StopParse",
	ContinueParse:           "ContinueParse",
	InvalidLicgenVersion:    "InvalidLicgenVersion",
	InvalidSigID:            "InvalidSigId",
	FeatureExpired:          "FeatureExpired",
	LicCachingError:         "LicCachingError",
	InvalidProduct:          "InvalidProduct",
	InvalidParam1:           "InvalidParam1",
	InvalidParam2:           "InvalidParam2",
	InvalidParam3:           "InvalidParam3",
	InvalidParam4:           "InvalidParam4",
	InvalidParam5:           "InvalidParam5",
	InvalidWireType:         "InvalidWireType",
	InternalError:           "InternalError",
	InvalidKeysize:          "InvalidKeysize",
	InvalidVendorID:         "InvalidVendorId",
	InvalidProductID:        "InvalidProductId",
	InvalidContainerID:      "InvalidContainerId",
	LicFieldPresent:         "LicFieldPresent",
	InvalidLicenseType:      "InvalidLicenseType",
	ExpirationNotSupported:  "ExpirationNotSupported",
	InvalidStartDate:        "InvalidStartDate",
	InvalidEndDate:          "InvalidEndDate",
	InactiveLicense:         "InactiveLicense",
	RtcNotPresent:           "RtcNotPresent",
	NoClockSupport:          "NoClockSupport",
	InvalidFieldLength:      "InvalidFieldLength",
	DataMismatch:            "DataMismatch",
	NodeLockingNotSupported: "NodeLockingNotSupported",
	FingerprintMagicInvalid: "FingerprintMagicInvalid",
	UnknownFingerprintAlg:   "UnknownFingerprintAlg",
	FingerprintMismatch:     "FingerprintMismatch",
	InvalidDeviceLength:     "InvalidDeviceLength",
	RsaVerifyFailed:         "RsaVerifyFailed",
}

func (s Status) String() string {
	if n, ok := names[s]; ok {
		return n
	}
	return "UnknownStatus"
}

// ClearsCache reports whether a failure carrying this status must clear
// the validation cache: fatal parse errors and cryptographic failures
// clear the cache; policy outcomes and capability-absence do not, since
// the license itself may still be cryptographically fine.
func (s Status) ClearsCache() bool {
	switch s {
	case InvalidV2C, InvalidWireType, InvalidFieldLength,
		InvalidParam1, InvalidParam2, InvalidParam3, InvalidParam4, InvalidParam5,
		RsaVerifyFailed, FingerprintMismatch, FingerprintMagicInvalid, UnknownFingerprintAlg:
		return true
	default:
		return false
	}
}

// Internal reports whether s is a parser-internal signal that must never
// be returned from a public entry point.
func (s Status) Internal() bool {
	return s == StopParse || s == ContinueParse
}
