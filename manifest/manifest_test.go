// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package manifest

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/siemens/cmdplug"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The test manifest declares a healthy plugin backed by the shell (which we
// can safely expect in PATH), an entry whose executable is nowhere to be
// found, and an entry relying on the prefix-derived default executable name.
const testManifest = `prefix: cmdplug-
plugins:
  - name: shello
    command: sh
    short: Greets from a shell one-liner.
  - name: yeti
    command: cmdplug-yeti-does-not-exist
  - name: orphan
`

// writeManifest drops the YAML document into a temporary manifest file,
// returning its path.
func writeManifest(yaml string) string {
	path := filepath.Join(GinkgoT().TempDir(), "plugins.yaml")
	Expect(os.WriteFile(path, []byte(yaml), 0o644)).To(Succeed())
	return path
}

// execute runs the group with the specified CLI args, returning the combined
// stdout+stderr output of the command tree.
func execute(group *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer
	group.SetOut(&out)
	group.SetErr(&out)
	group.SetArgs(args)
	err := group.Execute()
	return out.String(), err
}

var _ = Describe("plugin manifests", func() {

	It("loads a well-formed manifest", func() {
		m, err := Load(writeManifest(testManifest))
		Expect(err).NotTo(HaveOccurred())
		Expect(m.Prefix).To(Equal("cmdplug-"))
		Expect(m.Entries).To(HaveLen(3))
		Expect(m.Entries[0].Name).To(Equal("shello"))
		Expect(m.Entries[0].Command).To(Equal("sh"))
	})

	It("rejects manifests with unknown fields", func() {
		_, err := Load(writeManifest(`plugins:
  - name: foo
    commandeer: typo
`))
		Expect(err).To(HaveOccurred())
	})

	It("rejects nameless plugin entries", func() {
		_, err := Load(writeManifest(`plugins:
  - short: no name, no service
`))
		Expect(err).To(MatchError(ContainSubstring("lacks a name")))
	})

	It("reports unreadable manifests", func() {
		_, err := Load(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})

	It("resolves entries lazily, missing executables contained", func() {
		m, err := Load(writeManifest(testManifest))
		Expect(err).NotTo(HaveOccurred())
		plugins := m.Plugins()
		Expect(plugins).To(HaveLen(3))

		group := &cobra.Command{Use: "root"}
		_, err = cmdplug.Attach(group, plugins, &cmdplug.AttachOptions{})
		Expect(err).NotTo(HaveOccurred())
		Expect(group.Commands()).To(HaveLen(3))

		By("passing the user's args through to the healthy plugin executable")
		out, err := execute(group, "shello", "-c", "printf hi")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("hi"))

		By("deferring the missing executable until invocation")
		reason, broken := cmdplug.Broken(findCommand(group, "yeti"))
		Expect(broken).To(BeTrue())
		Expect(reason).To(ContainSubstring("cmdplug-yeti-does-not-exist"))
		_, err = execute(group, "yeti")
		Expect(err).To(MatchError(ContainSubstring("cmdplug-yeti-does-not-exist")))

		By("deriving the default executable name from the prefix")
		reason, broken = cmdplug.Broken(findCommand(group, "orphan"))
		Expect(broken).To(BeTrue())
		Expect(reason).To(ContainSubstring("cmdplug-orphan"))
	})

	It("keeps the declared short help on resolved plugins", func() {
		entry := PluginEntry{
			Name:    "shello",
			Command: "sh",
			Short:   "Greets from a shell one-liner.",
		}
		cmd, err := newExecCommand("cmdplug-", entry)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmd.Short).To(Equal("Greets from a shell one-liner."))
	})

	It("derives a short help for taciturn plugin entries", func() {
		cmd, err := newExecCommand("", PluginEntry{Name: "shello", Command: "sh"})
		Expect(err).NotTo(HaveOccurred())
		Expect(cmd.Short).To(ContainSubstring(`"sh"`))
	})

})

// findCommand returns the group's sub-command with the specified name, or
// nil.
func findCommand(group *cobra.Command, name string) *cobra.Command {
	for _, cmd := range group.Commands() {
		if cmd.Name() == name {
			return cmd
		}
	}
	return nil
}
