package question

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	"github.com/tapcraft-io/kubedrill/internal/equiv"
)

// DecodeManifest parses a user- or author-supplied manifest document (YAML
// or JSON) into the engine's tree representation. This is the parsing
// boundary: the engine itself never sees raw manifest text.
func DecodeManifest(data []byte) (equiv.ManifestNode, error) {
	decoder := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader(data), 4096)

	var value any
	if err := decoder.Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return equiv.ManifestNode{}, fmt.Errorf("empty manifest")
		}
		return equiv.ManifestNode{}, fmt.Errorf("parsing manifest: %w", err)
	}
	if value == nil {
		return equiv.ManifestNode{}, fmt.Errorf("empty manifest")
	}

	return equiv.FromValue(value), nil
}
