package initialize

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

const configHeader = `# revcheck configuration file
#
# changelog      markdown changelog whose first released heading is the latest tag
# heading-level  heading level of release entries (default 2)
# unreleased     heading text skipped when looking for the latest tag
# targets        documentation pages whose fenced blocks pin a rev
#   path         page to check
#   language     info string of the blocks to inspect (yaml, toml, json)
#   field        dot path of the pinned rev inside each block
`

// commentedMarshaler encodes configuration as YAML preceded by a header
// describing every setting.
type commentedMarshaler struct{}

func (m *commentedMarshaler) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	buf.WriteString("\n")
	buf.Write(data)
	return buf.Bytes(), nil
}
