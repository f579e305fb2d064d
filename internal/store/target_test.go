package store_test

import (
	"context"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

var _ = Describe("target store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM migration_targets;")
	})

	Context("create", func() {
		It("successfully creates a target and assigns an id", func() {
			target, err := s.Target().Create(context.TODO(), model.MigrationTarget{
				Name:          "aws-east",
				PlatformType:  "aws",
				BandwidthMbps: 1000,
			})
			Expect(err).To(BeNil())
			Expect(target.ID).ToNot(Equal(uuid.Nil))
		})

		It("applies the documented replication defaults", func() {
			created, err := s.Target().Create(context.TODO(), model.MigrationTarget{Name: "defaults"})
			Expect(err).To(BeNil())

			target, err := s.Target().Get(context.TODO(), created.ID)
			Expect(err).To(BeNil())
			Expect(target.CompressionRatio).To(Equal(0.6))
			Expect(target.DedupRatio).To(Equal(0.8))
			Expect(target.ChangeRatePercent).To(Equal(0.1))
			Expect(target.NetworkProtocolOverhead).To(Equal(1.2))
			Expect(target.DeltaSyncCount).To(Equal(2))
			Expect(target.NetworkEfficiency).To(Equal(0.8))
		})

		It("failed to create target - duplicate name", func() {
			_, err := s.Target().Create(context.TODO(), model.MigrationTarget{Name: "aws-east"})
			Expect(err).To(BeNil())

			_, err = s.Target().Create(context.TODO(), model.MigrationTarget{Name: "aws-east"})
			Expect(err).To(Equal(store.ErrDuplicateKey))
		})
	})

	Context("get/list/delete", func() {
		It("failed to get target - target does not exist", func() {
			target, err := s.Target().Get(context.TODO(), uuid.New())
			Expect(err).To(Equal(store.ErrRecordNotFound))
			Expect(target).To(BeNil())
		})

		It("successfully lists targets ordered by name", func() {
			_, err := s.Target().Create(context.TODO(), model.MigrationTarget{Name: "zeta"})
			Expect(err).To(BeNil())
			_, err = s.Target().Create(context.TODO(), model.MigrationTarget{Name: "alpha"})
			Expect(err).To(BeNil())

			targets, err := s.Target().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(targets).To(HaveLen(2))
			Expect(targets[0].Name).To(Equal("alpha"))
			Expect(targets[1].Name).To(Equal("zeta"))
		})

		It("delete target is idempotent", func() {
			created, err := s.Target().Create(context.TODO(), model.MigrationTarget{Name: "aws-east"})
			Expect(err).To(BeNil())

			Expect(s.Target().Delete(context.TODO(), created.ID)).To(BeNil())
			Expect(s.Target().Delete(context.TODO(), created.ID)).To(BeNil())

			targets, err := s.Target().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(targets).To(HaveLen(0))
		})
	})
})
