package config

// UserAgent is a named User-Agent header value.
type UserAgent struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// DefaultUserAgentName is the table entry used when --user-agent is not given.
const DefaultUserAgentName = "Firefox33"

// builtinUserAgents is listed in --show-user-agent order.
var builtinUserAgents = []UserAgent{
	{Name: "IE9", Value: "Mozilla/5.0 (compatible; MSIE 9.0; Windows NT 6.1; Trident/5.0)"},
	{Name: "Firefox33", Value: "Mozilla/5.0 (Windows NT 6.1; rv:33.0) Gecko/20100101 Firefox/33.0"},
}

// UserAgentTable is an ordered name to User-Agent mapping.
type UserAgentTable struct {
	entries []UserAgent
}

// NewUserAgentTable returns a table holding the built-in entries.
func NewUserAgentTable() *UserAgentTable {
	entries := make([]UserAgent, len(builtinUserAgents))
	copy(entries, builtinUserAgents)
	return &UserAgentTable{entries: entries}
}

// Lookup returns the User-Agent value registered under name.
func (t *UserAgentTable) Lookup(name string) (string, bool) {
	for _, ua := range t.entries {
		if ua.Name == name {
			return ua.Value, true
		}
	}
	return "", false
}

// Set registers value under name. An existing entry keeps its position.
func (t *UserAgentTable) Set(name, value string) {
	for i, ua := range t.entries {
		if ua.Name == name {
			t.entries[i].Value = value
			return
		}
	}
	t.entries = append(t.entries, UserAgent{Name: name, Value: value})
}

// Names returns the entry names in table order.
func (t *UserAgentTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, ua := range t.entries {
		names = append(names, ua.Name)
	}
	return names
}
