package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helpFS() fstest.MapFS {
	return fstest.MapFS{
		"link-types.md":        {Data: []byte("# Link types\n\nrequire and require-dev")},
		"repositories.txt":     {Data: []byte("Repository files")},
		"config.txxt":          {Data: []byte("Configuration Guide")},
		"ignore.json":          {Data: []byte("{}")},
		"option-link-type.txt": {Data: []byte("Link type flag help")},
		"option-verbose.txt":   {Data: []byte("Verbose help")},
		"advanced/formats.txt": {Data: []byte("Manifest formats")},
	}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(helpFS())
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name    string
			exists  bool
			content string
		}{
			{"link-types", true, "# Link types\n\nrequire and require-dev"},
			{"repositories", true, "Repository files"},
			{"config", false, ""},
			{"ignore", false, ""},
			{"formats", true, "Manifest formats"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.exists, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(helpFS(), Options{Extensions: []string{".txt", ".md", ".txxt"}})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("config")
		require.True(t, exists)
		assert.Equal(t, "Configuration Guide", topic.Content)
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(helpFS())
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"repositories", "repositories", true},
		{"option-link-type", "option-link-type", true},
		{"link-type", "option-link-type", true},
		{"--link-type", "option-link-type", true},
		{"-link-type", "option-link-type", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(helpFS())
	require.NoError(t, tm.scanTopics())

	assert.Equal(t, []string{
		"formats", "link-types", "option-link-type", "option-verbose", "repositories",
	}, tm.ListTopics())
}

func TestTopicManager_Empty(t *testing.T) {
	tm := New(fstest.MapFS{})
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func newApp(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "depends",
		Short: "Show dependents",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	_, err := Initialize(rootCmd, helpFS())
	require.NoError(t, err)
	return rootCmd, out
}

func TestInitialize(t *testing.T) {
	rootCmd, _ := newApp(t)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestHelpCommand_Topic(t *testing.T) {
	rootCmd, out := newApp(t)

	rootCmd.SetArgs([]string{"help", "repositories"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Repository files")
}

func TestHelpCommand_TopicList(t *testing.T) {
	rootCmd, out := newApp(t)

	rootCmd.SetArgs([]string{"help", "topics"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "General topics:")
	assert.Contains(t, out.String(), "  link-types\n")
	assert.Contains(t, out.String(), "  --verbose\n")
	assert.Contains(t, out.String(), "Use 'testapp help <topic>'")
}

func TestHelpCommand_FallsBackToCommandHelp(t *testing.T) {
	rootCmd, out := newApp(t)

	rootCmd.SetArgs([]string{"help", "depends"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Show dependents")
}

func TestGlamourRenderer_NonMarkdown(t *testing.T) {
	r := NewPlainGlamourRenderer()
	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))
	assert.Contains(t, r.Render("# Title", ".md"), "Title")
}
