package deployer_test

import (
	"bytes"
	"errors"

	"github.com/compozed/stackdactyl/config"
	. "github.com/compozed/stackdactyl/deployer"
	"github.com/compozed/stackdactyl/logger"
	"github.com/compozed/stackdactyl/mocks"
	S "github.com/compozed/stackdactyl/structs"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/op/go-logging"
	"github.com/spf13/afero"
)

var _ = Describe("Deployer", func() {
	var (
		d          Deployer
		cfg        config.Config
		af         *afero.Afero
		fetcher    *mocks.Fetcher
		envManager *mocks.EnvManager
		courier    *mocks.Courier
		random     *mocks.Randomizer
		out        *bytes.Buffer
	)

	BeforeEach(func() {
		cfg = config.Config{
			Project:           "clockworks",
			Sites:             []string{"erp.clockworks.example.org"},
			Email:             "ops@clockworks.example.org",
			Apps:              []string{"erpnext"},
			BackupSchedule:    "@every 6h",
			HTTPS:             true,
			HTTPPort:          "8080",
			RepoBaseDir:       "/work",
			EnvFilePath:       "/home/test/clockworks.env",
			ComposeFilePath:   "/home/test/clockworks-compose.yml",
			PasswordsFilePath: "/home/test/clockworks-passwords.txt",
		}

		af = &afero.Afero{Fs: afero.NewMemMapFs()}
		fetcher = &mocks.Fetcher{}
		fetcher.FetchCall.Returns.RepoPath = "/work/frappe_docker"
		envManager = &mocks.EnvManager{}
		courier = &mocks.Courier{}
		random = &mocks.Randomizer{}
		random.HexStringCall.Returns.Values = []string{"dbsecret00000000", "adminsecret00000"}
		out = &bytes.Buffer{}

		d = Deployer{
			Config:     cfg,
			Fetcher:    fetcher,
			EnvManager: envManager,
			Courier:    courier,
			Randomizer: random,
			FileSystem: af,
			Log:        logger.DefaultLogger(GinkgoWriter, logging.DEBUG, "deployer_test"),
		}
	})

	Describe("Deploy", func() {
		Context("on a fresh host", func() {
			It("generates credentials and saves them to the passwords file", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(envManager.WriteCall.Received.Paths[0]).To(Equal("/home/test/clockworks-passwords.txt"))
				Expect(envManager.WriteCall.Received.Pairs[0]).To(Equal([]S.EnvPair{
					{Key: "ADMINISTRATOR_PASSWORD", Value: "adminsecret00000"},
					{Key: "MARIADB_ROOT_PASSWORD", Value: "dbsecret00000000"},
				}))
				Expect(out.String()).To(ContainSubstring("Passwords saved to /home/test/clockworks-passwords.txt"))
			})

			It("writes the env file with the generated credentials", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(envManager.WriteCall.Received.Paths[1]).To(Equal("/home/test/clockworks.env"))

				pairs := envManager.WriteCall.Received.Pairs[1]
				Expect(pairs).To(ContainElements(
					S.EnvPair{Key: "DB_PASSWORD", Value: "dbsecret00000000"},
					S.EnvPair{Key: "SITE_ADMIN_PASS", Value: "adminsecret00000"},
					S.EnvPair{Key: "SITES", Value: "`erp.clockworks.example.org`"},
					S.EnvPair{Key: "ERPNEXT_VERSION", Value: "latest"},
					S.EnvPair{Key: "DB_HOST", Value: "db"},
					S.EnvPair{Key: "PULL_POLICY", Value: "missing"},
				))
				Expect(pairs).ToNot(ContainElement(S.EnvPair{Key: "HTTP_PUBLISH_PORT", Value: "8080"}))
			})

			It("renders, starts and provisions each site in order", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(fetcher.FetchCall.TimesCalled).To(Equal(1))
				Expect(courier.RenderCall.TimesCalled).To(Equal(1))
				Expect(courier.RenderCall.Received.HTTPS).To(BeTrue())
				Expect(courier.RenderCall.Received.RepoPath).To(Equal("/work/frappe_docker"))
				Expect(courier.UpCall.TimesCalled).To(Equal(1))
				Expect(courier.NewSiteCall.TimesCalled).To(Equal(1))
				Expect(courier.NewSiteCall.Received.Sites).To(Equal([]string{"erp.clockworks.example.org"}))
				Expect(courier.NewSiteCall.Received.DBPassword).To(Equal("dbsecret00000000"))
				Expect(courier.NewSiteCall.Received.AdminPassword).To(Equal("adminsecret00000"))
				Expect(courier.NewSiteCall.Received.Apps).To(Equal([]string{"erpnext"}))

				Expect(out.String()).To(ContainSubstring("Deployment successful"))
			})

			It("publishes the http port when https is disabled", func() {
				d.Config.HTTPS = false

				Expect(d.Deploy(out)).To(Succeed())

				Expect(courier.RenderCall.Received.HTTPS).To(BeFalse())
				Expect(envManager.WriteCall.Received.Pairs[1]).To(ContainElement(
					S.EnvPair{Key: "HTTP_PUBLISH_PORT", Value: "8080"},
				))
			})
		})

		Context("when an environment file exists from a prior run", func() {
			BeforeEach(func() {
				Expect(af.WriteFile(cfg.EnvFilePath, []byte("placeholder"), 0600)).To(Succeed())
				envManager.ReadCall.Returns.Vars = map[string]string{
					"DB_PASSWORD":     "storeddbpass0000",
					"SITE_ADMIN_PASS": "storedadminpass0",
					"SITES":           "`stored.example.org`,`other.example.org`",
				}
			})

			It("reuses the stored credentials", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(random.HexStringCall.TimesCalled).To(Equal(0))
				Expect(courier.NewSiteCall.Received.DBPassword).To(Equal("storeddbpass0000"))
				Expect(courier.NewSiteCall.Received.AdminPassword).To(Equal("storedadminpass0"))
			})

			It("does not rewrite the passwords file", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(envManager.WriteCall.Received.Paths).To(Equal([]string{"/home/test/clockworks.env"}))
			})

			It("provisions the sites recorded in the env file", func() {
				Expect(d.Deploy(out)).To(Succeed())

				Expect(courier.NewSiteCall.Received.Sites).To(Equal([]string{"stored.example.org", "other.example.org"}))
			})
		})

		Context("when a step fails", func() {
			It("stops after a fetch failure", func() {
				fetcher.FetchCall.Returns.Error = errors.New("connection refused")

				err := d.Deploy(out)
				Expect(err).To(BeAssignableToTypeOf(FetchRepoError{}))
				Expect(courier.RenderCall.TimesCalled).To(Equal(0))
				Expect(courier.UpCall.TimesCalled).To(Equal(0))
			})

			It("stops after a render failure without starting services", func() {
				courier.RenderCall.Returns.Output = []byte("no such overlay")
				courier.RenderCall.Returns.Error = errors.New("exit status 1")

				err := d.Deploy(out)
				Expect(err).To(BeAssignableToTypeOf(RenderComposeError{}))
				Expect(err.Error()).To(ContainSubstring("no such overlay"))
				Expect(courier.UpCall.TimesCalled).To(Equal(0))
				Expect(courier.NewSiteCall.TimesCalled).To(Equal(0))
			})

			It("stops after an up failure without provisioning sites", func() {
				courier.UpCall.Returns.Error = errors.New("exit status 1")

				err := d.Deploy(out)
				Expect(err).To(BeAssignableToTypeOf(StartServicesError{}))
				Expect(courier.NewSiteCall.TimesCalled).To(Equal(0))
			})

			It("reports the failing site on a provisioning failure", func() {
				courier.NewSiteCall.Returns.Output = []byte("site exists")
				courier.NewSiteCall.Returns.Error = errors.New("exit status 1")

				err := d.Deploy(out)
				Expect(err).To(BeAssignableToTypeOf(ProvisionSiteError{}))
				Expect(err.Error()).To(ContainSubstring("erp.clockworks.example.org"))
				Expect(err.Error()).To(ContainSubstring("site exists"))
			})
		})
	})

	Describe("Upgrade", func() {
		It("refuses to run without an existing environment file", func() {
			err := d.Upgrade(out)
			Expect(err).To(BeAssignableToTypeOf(MissingEnvFileError{}))
			Expect(courier.RenderCall.TimesCalled).To(Equal(0))
		})

		Context("with an existing environment file", func() {
			BeforeEach(func() {
				Expect(af.WriteFile(cfg.EnvFilePath, []byte("placeholder"), 0600)).To(Succeed())
				envManager.ReadCall.Returns.Vars = map[string]string{
					"DB_PASSWORD":     "storeddbpass0000",
					"SITE_ADMIN_PASS": "storedadminpass0",
					"SITES":           "`stored.example.org`",
				}
			})

			It("re-renders, restarts and migrates every site", func() {
				Expect(d.Upgrade(out)).To(Succeed())

				Expect(courier.RenderCall.TimesCalled).To(Equal(1))
				Expect(courier.UpCall.TimesCalled).To(Equal(1))
				Expect(courier.MigrateAllCall.TimesCalled).To(Equal(1))
				Expect(courier.MigrateAllCall.Received.Project).To(Equal("clockworks"))
				Expect(out.String()).To(ContainSubstring("Upgrade successful"))
			})

			It("keeps the stored credentials in the rewritten env file", func() {
				Expect(d.Upgrade(out)).To(Succeed())

				Expect(envManager.WriteCall.Received.Pairs[0]).To(ContainElement(
					S.EnvPair{Key: "DB_PASSWORD", Value: "storeddbpass0000"},
				))
			})

			It("surfaces migration failures", func() {
				courier.MigrateAllCall.Returns.Error = errors.New("exit status 1")

				err := d.Upgrade(out)
				Expect(err).To(BeAssignableToTypeOf(MigrateError{}))
			})
		})
	})

	Describe("Restart", func() {
		It("restarts the project services", func() {
			Expect(d.Restart(out)).To(Succeed())

			Expect(courier.RestartCall.TimesCalled).To(Equal(1))
			Expect(courier.RestartCall.Received.Project).To(Equal("clockworks"))
		})
	})

	Describe("Teardown", func() {
		It("stops the services and preserves volumes by default", func() {
			Expect(d.Teardown(out, false)).To(Succeed())

			Expect(courier.DownCall.Received.RemoveVolumes).To(BeFalse())
			Expect(out.String()).To(ContainSubstring("preserved"))
		})

		It("removes the volumes when asked to", func() {
			Expect(d.Teardown(out, true)).To(Succeed())

			Expect(courier.DownCall.Received.RemoveVolumes).To(BeTrue())
		})
	})
})
