package tabular_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/bjaus/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lines splits a raw string literal, dropping the leading newline that
// keeps tables aligned in the source.
func lines(s string) []string {
	return strings.Split(strings.TrimPrefix(strings.TrimSuffix(s, "\n"), "\n"), "\n")
}

func maps(records []tabular.Record) []map[string]string {
	out := make([]map[string]string, len(records))
	for i, r := range records {
		out[i] = r.Map()
	}
	return out
}

const dockerPS = `
CONTAINER ID        IMAGE                      COMMAND                  CREATED             STATUS              PORTS                                                                       NAMES
a5b04a56f27c        docker_dashboard           "npm start"              3 days ago          Up 18 minutes       127.0.0.1:4000->4000/tcp, 5858/tcp                                          docker_dashboard_1
7755ce972c33        docker_crawler             "docker-entrypoint.s…"   3 days ago          Up 18 minutes       0.0.0.0:3000->3000/tcp, 5858/tcp                                            docker_crawler_1
f41dca732dbe        metabase/metabase:latest   "/app/run_metabase.sh"   3 days ago          Up 18 minutes       127.0.0.1:5000->3000/tcp                                                    docker_metabase_1
3808427a882c        rabbitmq:management        "docker-entrypoint.s…"   3 days ago          Up 18 minutes       4369/tcp, 5671-5672/tcp, 15671/tcp, 25672/tcp, 127.0.0.1:15672->15672/tcp   docker_rabbitmq_1
`

// ssTCP has the ss header layout where "Address:Port" sits above a
// right-justified address column and a left-justified port column.
const ssTCP = `
State      Recv-Q Send-Q      Local Address:Port      Peer Address:Port
LISTEN     0      128             127.0.0.1 5432           0.0.0.0 *
LISTEN     0      128               0.0.0.0 22             0.0.0.0 *
ESTAB      0      0              10.0.0.212 49152    93.184.216.34 443
`

const netstat = `
Active Internet connections (servers and established)
Proto Recv-Q Send-Q Local Address           Foreign Address         State       PID/Program name
tcp        0      0 127.0.0.1:4000          0.0.0.0:*               LISTEN      -
tcp        0      0 127.0.0.1:17600         0.0.0.0:*               LISTEN      9244/dropbox
tcp        0      0 0.0.0.0:902             0.0.0.0:*               LISTEN      -
`

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []map[string]string
	}{
		"simple left-justified": {
			input: `
One     Two    Three
1.1     1.2    1.3
2.1     2.2    2.3
`,
			want: []map[string]string{
				{"One": "1.1", "Two": "1.2", "Three": "1.3"},
				{"One": "2.1", "Two": "2.2", "Three": "2.3"},
			},
		},
		"duplicate headers": {
			input: `
A    A    A
1    2    3
4    5    6
`,
			want: []map[string]string{
				{"A_1": "1", "A_2": "2", "A_3": "3"},
				{"A_1": "4", "A_2": "5", "A_3": "6"},
			},
		},
		"ps with right-justified pid": {
			input: `
  PID TTY          TIME CMD
 4960 pts/9    00:00:01 bash
 4970 pts/9    00:00:00 ps
`,
			want: []map[string]string{
				{"PID": "4960", "TTY": "pts/9", "TIME": "00:00:01", "CMD": "bash"},
				{"PID": "4970", "TTY": "pts/9", "TIME": "00:00:00", "CMD": "ps"},
			},
		},
		"bar-delimited with borders": {
			input: `
+--------------+--------+
| NAME         | STATUS |
+--------------+--------+
| web          | Up 3 h |
| db           |        |
+--------------+--------+
`,
			want: []map[string]string{
				{"NAME": "web", "STATUS": "Up 3 h"},
				{"NAME": "db"},
			},
		},
		"glued right column": {
			input: `
Proto Recv-Q Local Address
tcp        0 127.0.0.1:80
udp       12 0.0.0.0:53
`,
			want: []map[string]string{
				{"Proto": "tcp", "Recv-Q": "0", "Local Address": "127.0.0.1:80"},
				{"Proto": "udp", "Recv-Q": "12", "Local Address": "0.0.0.0:53"},
			},
		},
		"lone bar header in a space table": {
			input: `
A   |   B
1   x   2
`,
			want: []map[string]string{
				{"A": "1", "|": "x", "B": "2"},
			},
		},
		"blank lines ignored": {
			input: `
One   Two

1     2

`,
			want: []map[string]string{
				{"One": "1", "Two": "2"},
			},
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.Parse(lines(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, maps(got))
		})
	}
}

func TestParseKeepsColumnOrder(t *testing.T) {
	t.Parallel()
	got, err := tabular.Parse(lines(`
Zeta   Alpha   Mid
z      a       m
`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, got[0].Keys())
	assert.Equal(t, []string{"z", "a", "m"}, got[0].Values())
}

func TestParseDocker(t *testing.T) {
	t.Parallel()
	got, err := tabular.Parse(lines(dockerPS))
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, map[string]string{
		"CONTAINER ID": "a5b04a56f27c",
		"IMAGE":        "docker_dashboard",
		"COMMAND":      `"npm start"`,
		"CREATED":      "3 days ago",
		"STATUS":       "Up 18 minutes",
		"PORTS":        "127.0.0.1:4000->4000/tcp, 5858/tcp",
		"NAMES":        "docker_dashboard_1",
	}, got[0].Map())

	cmd, ok := got[1].Get("COMMAND")
	require.True(t, ok)
	assert.Equal(t, `"docker-entrypoint.s…"`, cmd)

	ports, _ := got[3].Get("PORTS")
	assert.Equal(t, "4369/tcp, 5671-5672/tcp, 15671/tcp, 25672/tcp, 127.0.0.1:15672->15672/tcp", ports)
	names, _ := got[3].Get("NAMES")
	assert.Equal(t, "docker_rabbitmq_1", names)
}

func TestParseNetstat(t *testing.T) {
	t.Parallel()
	got, err := tabular.Parse(tabular.SkipLines(lines(netstat), 0))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{
			"Proto": "tcp", "Recv-Q": "0", "Send-Q": "0",
			"Local Address": "127.0.0.1:4000", "Foreign Address": "0.0.0.0:*",
			"State": "LISTEN", "PID/Program name": "-",
		},
		{
			"Proto": "tcp", "Recv-Q": "0", "Send-Q": "0",
			"Local Address": "127.0.0.1:17600", "Foreign Address": "0.0.0.0:*",
			"State": "LISTEN", "PID/Program name": "9244/dropbox",
		},
		{
			"Proto": "tcp", "Recv-Q": "0", "Send-Q": "0",
			"Local Address": "0.0.0.0:902", "Foreign Address": "0.0.0.0:*",
			"State": "LISTEN", "PID/Program name": "-",
		},
	}, maps(got))
}

func TestParseSS(t *testing.T) {
	t.Parallel()
	layout, err := tabular.Infer(lines(ssTCP))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"State", "Recv-Q", "Send-Q", "Local Address", "", "Port_1", "Peer Address", "", "Port_2",
	}, layout.Keys)
	assert.Equal(t, tabular.Span{Start: 24, End: 43, Just: tabular.Right}, layout.Spans[3])
	assert.Equal(t, tabular.Span{Start: 44, End: 49, Just: tabular.Left}, layout.Spans[5])

	got, err := tabular.Parse(lines(ssTCP))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{
			"State": "LISTEN", "Recv-Q": "0", "Send-Q": "128",
			"Local Address": "127.0.0.1", "Port_1": "5432",
			"Peer Address": "0.0.0.0", "Port_2": "*",
		},
		{
			"State": "LISTEN", "Recv-Q": "0", "Send-Q": "128",
			"Local Address": "0.0.0.0", "Port_1": "22",
			"Peer Address": "0.0.0.0", "Port_2": "*",
		},
		{
			"State": "ESTAB", "Recv-Q": "0", "Send-Q": "0",
			"Local Address": "10.0.0.212", "Port_1": "49152",
			"Peer Address": "93.184.216.34", "Port_2": "443",
		},
	}, maps(got))
	assert.Equal(t, []string{
		"State", "Recv-Q", "Send-Q", "Local Address", "Port_1", "Peer Address", "Port_2",
	}, got[0].Keys())
}

func TestParseSingleSpacedColumnsMerge(t *testing.T) {
	t.Parallel()
	// No boundary holds for every row, so everything lands in one column.
	got, err := tabular.Parse(lines(`
ID NAME
1 ab
22 c
`))
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{
		{"ID NAME": "1 ab"},
		{"ID NAME": "22 c"},
	}, maps(got))
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()
	tests := map[string][]string{
		"empty":          nil,
		"header only":    {"NAME   AGE"},
		"only borders":   {"+----+", "+----+"},
		"no boundary":    {"X", " 1"},
		"borders+header": {"+---+", "| A | B |", "+---+"},
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tabular.Parse(input)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tabular.ErrMalformedTable)

			var mte *tabular.MalformedTableError
			require.True(t, errors.As(err, &mte))
			assert.NotEmpty(t, mte.Reason)
		})
	}
}

func TestInferSpansTile(t *testing.T) {
	t.Parallel()
	inputs := map[string]string{
		"docker":  dockerPS,
		"netstat": strings.Join(tabular.SkipLines(lines(netstat), 0), "\n"),
		"ps":      "  PID TTY          TIME CMD\n 4960 pts/9    00:00:01 bash\n",
		"dup":     "A    A    A\n1    2    3\n",
		"ss":      ssTCP,
	}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			layout, err := tabular.Infer(lines(input))
			require.NoError(t, err)
			spans := layout.Spans
			require.NotEmpty(t, spans)
			assert.Equal(t, 0, spans[0].Start)
			assert.Equal(t, tabular.Unbounded, spans[len(spans)-1].End)
			for i := 0; i+1 < len(spans); i++ {
				assert.Equal(t, spans[i].End, spans[i+1].Start, "span %d", i)
				assert.Less(t, spans[i].Start, spans[i].End, "span %d", i)
			}
			assert.Len(t, layout.Keys, len(spans))
			assert.Len(t, layout.Header, len(spans))
		})
	}
}

func TestInferBoundariesMonotonic(t *testing.T) {
	t.Parallel()
	all := lines(dockerPS)
	full, err := tabular.Infer(all)
	require.NoError(t, err)

	starts := func(l *tabular.Layout) map[int]bool {
		m := map[int]bool{}
		for _, s := range l.Spans {
			m[s.Start] = true
		}
		return m
	}
	want := starts(full)
	for drop := 1; drop < len(all); drop++ {
		subset := append(append([]string{}, all[:drop]...), all[drop+1:]...)
		sub, err := tabular.Infer(subset)
		require.NoError(t, err)
		got := starts(sub)
		for pos := range want {
			assert.True(t, got[pos], "dropping line %d lost boundary %d", drop, pos)
		}
	}
}

func TestInferKeysUnique(t *testing.T) {
	t.Parallel()
	headers := []string{
		"A    A    A",
		"A    A    A_2",
		"A_2  A    A",
		"X    Y    X    Y",
	}
	for _, h := range headers {
		t.Run(h, func(t *testing.T) {
			t.Parallel()
			layout, err := tabular.Infer([]string{h, "1    2    3    4"})
			require.NoError(t, err)
			seen := map[string]bool{}
			for _, k := range layout.Keys {
				if k == "" {
					continue
				}
				assert.False(t, seen[k], "duplicate key %q in %v", k, layout.Keys)
				seen[k] = true
			}
		})
	}
}

func TestInferDivider(t *testing.T) {
	t.Parallel()
	layout, err := tabular.Infer([]string{"| A | B |", "| 1 | 2 |"})
	require.NoError(t, err)
	assert.Equal(t, tabular.DividerBar, layout.Divider)

	layout, err = tabular.Infer([]string{"A  B", "1  2"})
	require.NoError(t, err)
	assert.Equal(t, tabular.DividerSpace, layout.Divider)
}

func TestLayoutExtract(t *testing.T) {
	t.Parallel()
	layout, err := tabular.Infer(lines(`
NAME   AGE
bob    42
`))
	require.NoError(t, err)
	got := layout.Extract([]string{"amy    7", "", "       ", "carl"})
	assert.Equal(t, []map[string]string{
		{"NAME": "amy", "AGE": "7"},
		{"NAME": "carl"},
	}, maps(got))
}

func TestSpanString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[0,5)right", tabular.Span{Start: 0, End: 5, Just: tabular.Right}.String())
	assert.Equal(t, "[7,)left", tabular.Span{Start: 7, End: tabular.Unbounded}.String())
}
