package auth

// Resolve returns the credential to attach to an outbound call. The boolean
// is false when no credential must be attached. An empty string counts as an
// absent credential.
//
//	mode       caller present   result
//	service    any              service
//	caller     yes              caller
//	caller     no               none
//	public     any              none
//	preferred  yes              caller
//	preferred  no               service
//
// Unknown modes attach nothing.
func Resolve(mode Mode, caller, service string) (string, bool) {
	switch mode {
	case ModeService:
		return service, true
	case ModeCaller:
		if caller != "" {
			return caller, true
		}
		return "", false
	case ModePreferred:
		if caller != "" {
			return caller, true
		}
		return service, true
	default:
		return "", false
	}
}
