// (c) Siemens AG 2026
//
// SPDX-License-Identifier: MIT

package command

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/siemens/cmdplug"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// The CLI assembly specs run against the one and only root command, so they
// set up the whole CLI exactly once and in order.
var _ = Describe("the cmdplug CLI", Ordered, func() {

	var root *cobra.Command

	BeforeAll(func() {
		manifest := filepath.Join(GinkgoT().TempDir(), "plugins.yaml")
		Expect(os.WriteFile(manifest, []byte(`plugins:
  - name: shello
    command: sh
    short: Greets from a shell one-liner.
  - name: yeti
    command: cmdplug-yeti-does-not-exist
`), 0o644)).To(Succeed())
		os.Setenv("CMDPLUG_MANIFEST", manifest)
		DeferCleanup(os.Unsetenv, "CMDPLUG_MANIFEST")
		root = SetupCLI()
	})

	// execute runs the root command with the specified CLI args, returning
	// the combined stdout+stderr output.
	execute := func(args ...string) (string, error) {
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(args)
		err := root.Execute()
		return out.String(), err
	}

	It("assembles the built-in commands", func() {
		names := []string{}
		for _, cmd := range root.Commands() {
			names = append(names, cmd.Name())
		}
		Expect(names).To(ContainElements("version", "plugins", "options"))
	})

	It("attaches the manifest plugins", func() {
		attached := cmdplug.Attached(root)
		names := []string{}
		for _, cmd := range attached {
			names = append(names, cmd.Name())
		}
		Expect(names).To(ConsistOf("shello", "yeti"))
	})

	It("reports its version together with the compiled-in plugins", func() {
		out, err := execute("version")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("cmdplug version " + cmdplug.SemVersion))
	})

	It("lists the global options", func() {
		out, err := execute("options")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("--debug"))
	})

	It("hints at the broken plugin in its command listing", func() {
		out, err := execute()
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring(cmdplug.DiscreetMarker))
		Expect(out).To(ContainSubstring("yeti"))
	})

	It("lists plugins with their load status", func() {
		out, err := execute("plugins", "--no-headers")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("shello"))
		Expect(out).To(ContainSubstring("ok"))
		Expect(out).To(ContainSubstring("yeti"))
		Expect(out).To(ContainSubstring("broken"))
	})

	It("supports bare plugin name output", func() {
		out, err := execute("plugins", "-o", "name")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("shello"))
		Expect(out).To(ContainSubstring("yeti"))
	})

	It("filters the plugin listing by load status", func() {
		out, err := execute("plugins", "--no-headers", "broken")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("yeti"))
		Expect(out).NotTo(ContainSubstring("shello"))
	})

	It("forgets the status filter between invocations", func() {
		_, err := execute("plugins", "--no-headers", "broken")
		Expect(err).NotTo(HaveOccurred())
		out, err := execute("plugins", "--no-headers")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("shello"))
		Expect(out).To(ContainSubstring("yeti"))
	})

	It("runs the healthy plugin and fails the broken one", func() {
		out, err := execute("shello", "-c", "printf hi")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("hi"))

		_, err = execute("yeti")
		Expect(err).To(MatchError(ContainSubstring("cmdplug-yeti-does-not-exist")))
	})

})
