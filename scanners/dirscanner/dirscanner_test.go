package dirscanner_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/lagertest"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/syntax-sniffer/syntax-sniffer/scanners/dirscanner"
)

var _ = Describe("DirScanner", func() {
	var (
		scanner *dirscanner.DirScanner
		logger  *lagertest.TestLogger
		tmpDir  string
	)

	write := func(parts ...string) string {
		path := filepath.Join(append([]string{tmpDir}, parts...)...)
		Expect(os.MkdirAll(filepath.Dir(path), 0755)).To(Succeed())
		Expect(ioutil.WriteFile(path, []byte("x = 1\n"), 0600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("dirscanner")
		scanner = dirscanner.New(dirscanner.DefaultPattern)

		var err error
		tmpDir, err = ioutil.TempDir("", "testdir")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		_ = os.RemoveAll(tmpDir)
	})

	Describe("Scan", func() {
		It("finds matching files recursively in lexical order", func() {
			b := write("b.py")
			a := write("a.py")
			nested := write("pkg", "sub", "mod.py")
			hidden := write(".venv", "site.py")

			files, err := scanner.Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{hidden, a, b, nested}))
		})

		It("skips files that do not match the pattern", func() {
			write("README.md")
			write("script.pyc")
			write("pkg", "data.json")
			kept := write("pkg", "main.py")

			files, err := scanner.Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{kept}))
		})

		It("does not return directories whose names match", func() {
			Expect(os.MkdirAll(filepath.Join(tmpDir, "weird.py"), 0755)).To(Succeed())
			inner := write("weird.py", "inner.py")

			files, err := scanner.Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{inner}))
		})

		It("returns nothing for an empty directory", func() {
			files, err := scanner.Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(BeEmpty())
		})

		It("honours a different pattern", func() {
			write("a.py")
			txt := write("notes.txt")

			files, err := dirscanner.New("*.txt").Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{txt}))
		})

		It("rejects a malformed pattern", func() {
			_, err := dirscanner.New("[").Scan(logger, tmpDir)
			Expect(err).To(HaveOccurred())
		})

		It("follows a symlinked root", func() {
			inside := write("real", "a.py")
			link := filepath.Join(tmpDir, "link")
			Expect(os.Symlink(filepath.Dir(inside), link)).To(Succeed())

			files, err := scanner.Scan(logger, link)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{filepath.Join(link, "a.py")}))
		})

		It("does not follow symlinked directories beneath the root", func() {
			outside, err := ioutil.TempDir("", "outside")
			Expect(err).NotTo(HaveOccurred())
			defer os.RemoveAll(outside)
			Expect(ioutil.WriteFile(filepath.Join(outside, "far.py"), []byte("x\n"), 0600)).To(Succeed())

			near := write("near.py")
			Expect(os.Symlink(outside, filepath.Join(tmpDir, "elsewhere"))).To(Succeed())

			files, err := scanner.Scan(logger, tmpDir)
			Expect(err).NotTo(HaveOccurred())
			Expect(files).To(Equal([]string{near}))
		})

		Context("when a subdirectory cannot be read", func() {
			var locked string

			BeforeEach(func() {
				if os.Geteuid() == 0 {
					Skip("permissions are not enforced for root")
				}

				write("locked", "hidden.py")
				locked = filepath.Join(tmpDir, "locked")
				Expect(os.Chmod(locked, 0000)).To(Succeed())
			})

			AfterEach(func() {
				_ = os.Chmod(locked, 0755)
			})

			It("skips it and returns what it found with the skipped paths", func() {
				a := write("a.py")
				z := write("zed", "z.py")

				files, err := scanner.Scan(logger, tmpDir)
				Expect(files).To(Equal([]string{a, z}))

				var skipped *multierror.Error
				Expect(errors.As(err, &skipped)).To(BeTrue())
				Expect(skipped.Errors).To(HaveLen(1))
				Expect(logger).To(gbytes.Say("skipping"))
			})
		})

		It("fails when the root cannot be walked", func() {
			_, err := scanner.Scan(logger, filepath.Join(tmpDir, "missing"))
			Expect(err).To(HaveOccurred())
		})
	})
})
