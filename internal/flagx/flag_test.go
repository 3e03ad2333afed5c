package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	configFlags := []string{"-c", "-config"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", ":8080"}, configFlags, []string{"-c", "conf.json"}},
		{"equals form", []string{"-config=alt.json", "-a", ":8080"}, configFlags, []string{"-config=alt.json"}},
		{"equals form keeps empty value", []string{"-c=", "-a", ":8080"}, configFlags, []string{"-c="}},
		{"equals form of a foreign flag is dropped", []string{"-a=:8080", "-c", "conf.json"}, configFlags, []string{"-c", "conf.json"}},
		{"only the name before the first equals counts", []string{"-c=a=b.json"}, configFlags, []string{"-c=a=b.json"}},
		{"value may contain equals", []string{"-c", "k=v"}, configFlags, []string{"-c", "k=v"}},
		{"mixed forms keep order", []string{"-config=first.json", "-c", "second.json", "-x", "1"}, configFlags, []string{"-config=first.json", "-c", "second.json"}},
		{"double dash is a different name", []string{"--config", "x.json"}, configFlags, []string{}},
		{"trailing flag without value", []string{"-c"}, configFlags, []string{"-c"}},
		{"next flag is not a value", []string{"-c", "-store", "memory"}, configFlags, []string{"-c"}},
		{"positional args are dropped", []string{"create-owner", "-c", "conf.json"}, configFlags, []string{"-c", "conf.json"}},
		{"several allowed flags", []string{"-first", "Olga", "-store", "memory", "-age", "41"}, []string{"-first", "-age"}, []string{"-first", "Olga", "-age", "41"}},
		{"repeated flag", []string{"-c", "one.json", "-c", "two.json"}, configFlags, []string{"-c", "one.json", "-c", "two.json"}},
		{"no args", []string{}, configFlags, []string{}},
		{"nothing allowed", []string{"-c", "conf.json"}, nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestLookup_SeveralNames(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"first name", []string{"bin", "-store", "mongo"}, "mongo"},
		{"second name", []string{"bin", "-s", "memory"}, "memory"},
		{"last occurrence wins across names", []string{"bin", "-s=memory", "-store", "mongo", "-s", "memory"}, "memory"},
		{"foreign flags around", []string{"bin", "-a", ":8080", "-store=mongo", "-l", "debug"}, "mongo"},
		{"absent", []string{"bin", "-a", ":8080"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, lookup("store", "s"))
		})
	}
}

func Test_jsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short -c with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/short.json"}
		assert.Equal(t, "/path/short.json", JsonConfigFlags())
	})

	t.Run("long -config with value", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", "/path/long.json"}
		assert.Equal(t, "/path/long.json", JsonConfigFlags())
	})

	t.Run("unknown flags are ignored", func(t *testing.T) {
		os.Args = []string{"testbin", "-x", "1", "-y", "2"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("multiple flags, last wins", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", "/path/1.json", "-config", "/path/2.json"}
		assert.Equal(t, "/path/2.json", JsonConfigFlags())
	})
}

func TestEnvFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"separate value", []string{"testbin", "-env-file", "prod.env", "-a", ":8080"}, "prod.env"},
		{"equals form", []string{"testbin", "-env-file=dev.env"}, "dev.env"},
		{"absent", []string{"testbin", "-c", "conf.json"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.want, EnvFileFlag())
		})
	}
}
