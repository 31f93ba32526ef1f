package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// run executes blogctl with args and returns what it printed on stdout.
func run(c *qt.C, args ...string) (string, error) {
	c.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// runCapturing is run that also returns what blogctl logged on stderr.
func runCapturing(c *qt.C, args ...string) (string, string, error) {
	c.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func cleanEnv(c *qt.C) {
	for _, env := range []string{"APP_ENV", "DATABASE_URL", "DATABASE_PATH", "BLOG_TIMEZONE", "LOG_LEVEL", "DATABASE_AUTH_TOKEN"} {
		c.Setenv(env, "")
	}
	c.Setenv("LOG_LEVEL", "error")
}

func writeMarkdown(c *qt.C, root, rel, content string) {
	path := filepath.Join(root, filepath.FromSlash(rel))
	c.Assert(os.MkdirAll(filepath.Dir(path), 0o755), qt.IsNil)
	c.Assert(os.WriteFile(path, []byte(content), 0o644), qt.IsNil)
}

var idLine = regexp.MustCompile(`ID: (\S+)`)

func TestCreateUserAndImport(t *testing.T) {
	c := qt.New(t)
	cleanEnv(c)
	dbPath := filepath.Join(c.TempDir(), "blog.db")

	out, err := run(c, "create-user", "Jane Doe", "Jane@Example.com", "--database-path", dbPath)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Created user jane@example.com")
	m := idLine.FindStringSubmatch(out)
	c.Assert(m, qt.HasLen, 2)
	authorID := m[1]

	_, err = run(c, "create-user", "Jane Again", "jane@example.com", "--database-path", dbPath)
	c.Assert(err, qt.ErrorMatches, "a user with email jane@example.com already exists")

	content := c.TempDir()
	writeMarkdown(c, content, "2024/03/first.md", "---\ntitle: First\ntags: [go]\n---\nHello.\n")

	out, err = run(c, "import", authorID, "--dir", content, "--database-path", dbPath)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Found 1 posts")
	c.Assert(out, qt.Contains, "[1/1] imported: 2024-03-first")
	c.Assert(out, qt.Contains, "Imported: 1, Skipped: 0, Failed: 0")

	out, err = run(c, "import", authorID, "--dir", content, "--database-path", dbPath)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.Contains, "Imported: 0, Skipped: 1, Failed: 0")

	writeMarkdown(c, content, "broken.md", "+++\ntitle = \"open\"\n")
	out, err = run(c, "import", authorID, "--dir", content, "--database-path", dbPath)
	c.Assert(err, qt.ErrorMatches, "1 of 2 files failed to import")
	c.Assert(out, qt.Contains, "front matter is not terminated")
}

func TestImportArguments(t *testing.T) {
	c := qt.New(t)
	cleanEnv(c)
	dbPath := filepath.Join(c.TempDir(), "blog.db")

	_, err := run(c, "import", "--database-path", dbPath)
	c.Assert(err, qt.ErrorMatches, "accepts 1 arg.*")

	_, err = run(c, "import", "nobody", "--dir", filepath.Join(c.TempDir(), "missing"), "--database-path", dbPath)
	c.Assert(err, qt.ErrorMatches, "import directory not found: .*")

	_, err = run(c, "import", "nobody", "--dir", c.TempDir(), "--database-path", dbPath)
	c.Assert(err, qt.ErrorMatches, "load author nobody: not found")
}

func TestCreateUserRejectsInvalidEmail(t *testing.T) {
	c := qt.New(t)
	cleanEnv(c)

	_, err := run(c, "create-user", "Jane", "not-an-email", "--database-path", filepath.Join(c.TempDir(), "blog.db"))
	c.Assert(err, qt.ErrorMatches, "email: Email address is not valid.")

	_, err = run(c, "create-user", "Jane")
	c.Assert(err, qt.ErrorMatches, "accepts 2 arg.*")
}

func TestMigrateSettingsSources(t *testing.T) {
	c := qt.New(t)
	cleanEnv(c)

	c.Run("flag", func(c *qt.C) {
		path := filepath.Join(c.TempDir(), "flag.db")
		out, err := run(c, "migrate", "--database-path", path)
		c.Assert(err, qt.IsNil)
		c.Assert(out, qt.Equals, "Migrated sqlite store\n")
		_, err = os.Stat(path)
		c.Assert(err, qt.IsNil)
	})

	c.Run("environment", func(c *qt.C) {
		path := filepath.Join(c.TempDir(), "env.db")
		c.Setenv("DATABASE_PATH", path)
		_, err := run(c, "migrate")
		c.Assert(err, qt.IsNil)
		_, err = os.Stat(path)
		c.Assert(err, qt.IsNil)
	})

	c.Run("config file", func(c *qt.C) {
		dir := c.TempDir()
		path := filepath.Join(dir, "file.db")
		cfgFile := filepath.Join(dir, "blogctl.toml")
		c.Assert(os.WriteFile(cfgFile, []byte(fmt.Sprintf("database-path = %q\n", path)), 0o644), qt.IsNil)

		_, err := run(c, "migrate", "--config", cfgFile)
		c.Assert(err, qt.IsNil)
		_, err = os.Stat(path)
		c.Assert(err, qt.IsNil)
	})

	c.Run("unknown environment", func(c *qt.C) {
		_, err := run(c, "migrate", "--env", "staging", "--database-path", filepath.Join(c.TempDir(), "x.db"))
		c.Assert(err, qt.ErrorMatches, `APP_ENV must be one of .*`)
	})

	c.Run("missing config file", func(c *qt.C) {
		_, err := run(c, "migrate", "--config", filepath.Join(c.TempDir(), "absent.toml"))
		c.Assert(err, qt.ErrorMatches, "read config .*")
	})
}

func TestConfigFileLogLevel(t *testing.T) {
	c := qt.New(t)
	cleanEnv(c)
	c.Setenv("LOG_LEVEL", "")

	dir := c.TempDir()
	cfgFile := filepath.Join(dir, "blogctl.yaml")
	content := fmt.Sprintf("log-level: debug\ndatabase-path: %q\n", filepath.Join(dir, "blog.db"))
	c.Assert(os.WriteFile(cfgFile, []byte(content), 0o644), qt.IsNil)

	_, logs, err := runCapturing(c, "migrate", "--config", cfgFile)
	c.Assert(err, qt.IsNil)
	c.Assert(logs, qt.Contains, "Loaded config file")

	_, logs, err = runCapturing(c, "migrate", "--config", cfgFile, "--log-level", "error")
	c.Assert(err, qt.IsNil)
	c.Assert(logs, qt.Not(qt.Contains), "Loaded config file")
}

func TestBindSettings(t *testing.T) {
	c := qt.New(t)

	flags := NewRootCommand().PersistentFlags()
	c.Assert(bindSettings(viper.New(), flags), qt.IsNil)

	partial := pflag.NewFlagSet("partial", pflag.ContinueOnError)
	partial.String(configFileKey, "", "")
	c.Assert(bindSettings(viper.New(), partial), qt.ErrorMatches, "bind flag .*")
}
