package equiv

import "strings"

// CommandsEquivalent reports whether two command submissions normalize to the
// same canonical form, compared line by line. An empty reference is
// ErrMissingReference, never a silent false. A tokenization failure on either
// side is returned to the caller rather than coerced to a verdict.
func (e *Engine) CommandsEquivalent(userRaw, referenceRaw string) (bool, error) {
	if strings.TrimSpace(referenceRaw) == "" {
		return false, ErrMissingReference
	}

	user, err := e.NormalizeScript(userRaw)
	if err != nil {
		return false, err
	}
	reference, err := e.NormalizeScript(referenceRaw)
	if err != nil {
		return false, err
	}

	if len(user) != len(reference) {
		return false, nil
	}
	for i := range user {
		if user[i] != reference[i] {
			return false, nil
		}
	}
	return true, nil
}

// ManifestsEquivalent reports whether two parsed manifests normalize to the
// same structure. It is total: callers own the parsing boundary and supply
// valid nodes; unrecognized shapes simply compare by value.
func (e *Engine) ManifestsEquivalent(user, reference ManifestNode) bool {
	return Equal(NormalizeManifest(user), NormalizeManifest(reference))
}
