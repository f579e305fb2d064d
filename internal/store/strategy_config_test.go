package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/estimation"
	"github.com/vmdash/scenario-planner/internal/store"
)

var _ = Describe("strategy config store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM migration_strategy_configs;")
	})

	Context("seed", func() {
		It("successfully seeds one row per strategy", func() {
			Expect(s.Seed(context.TODO())).To(BeNil())

			configs, err := s.StrategyConfig().List(context.TODO())
			Expect(err).To(BeNil())
			Expect(configs).To(HaveLen(len(estimation.Strategies)))
		})

		It("seeding twice leaves existing rows untouched", func() {
			Expect(s.Seed(context.TODO())).To(BeNil())

			tx := gormdb.Exec("UPDATE migration_strategy_configs SET hours_per_vm = 99 WHERE strategy = 'rehost';")
			Expect(tx.Error).To(BeNil())

			Expect(s.Seed(context.TODO())).To(BeNil())

			config, err := s.StrategyConfig().Get(context.TODO(), estimation.StrategyRehost)
			Expect(err).To(BeNil())
			Expect(config.HoursPerVM).To(Equal(99.0))
		})

		It("seeded rows carry the documented defaults", func() {
			Expect(s.Seed(context.TODO())).To(BeNil())

			config, err := s.StrategyConfig().Get(context.TODO(), estimation.StrategyRefactor)
			Expect(err).To(BeNil())

			params := config.Parameters()
			Expect(params.HoursPerVM).To(Equal(40.0))
			Expect(params.LaborRatePerHour).To(Equal(200.0))
			Expect(params.ComputeMultiplier).To(Equal(0.6))
			Expect(params.NetworkMultiplier).To(Equal(0.1))
			Expect(params.ReplicationEfficiency).To(Equal(1.0))
			Expect(params.ParallelReplicationFactor).To(Equal(1.0))
		})
	})

	Context("get", func() {
		It("failed to get config - strategy not seeded", func() {
			config, err := s.StrategyConfig().Get(context.TODO(), estimation.StrategyRehost)
			Expect(err).To(Equal(store.ErrRecordNotFound))
			Expect(config).To(BeNil())
		})
	})
})
