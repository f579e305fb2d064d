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

var _ = Describe("wave store", Ordered, func() {
	var (
		s          store.Store
		gormdb     *gorm.DB
		scenarioID uuid.UUID
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())

		scenarioID = uuid.New()
	})

	AfterAll(func() {
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM migration_waves;")
	})

	It("successfully creates a batch and lists it in wave order", func() {
		first := uuid.New()
		second := uuid.New()

		created, err := s.Wave().CreateBatch(context.TODO(), []model.MigrationWave{
			{
				ID:               second,
				ScenarioID:       scenarioID,
				WaveNumber:       2,
				VMIDs:            model.MakeJSONField([]string{"vm-3"}),
				Status:           model.WaveStatusPlanned,
				DependsOnWaveIDs: model.MakeJSONField([]uuid.UUID{first}),
			},
			{
				ID:         first,
				ScenarioID: scenarioID,
				WaveNumber: 1,
				VMIDs:      model.MakeJSONField([]string{"vm-1", "vm-2"}),
				Status:     model.WaveStatusPlanned,
			},
		})
		Expect(err).To(BeNil())
		Expect(created).To(HaveLen(2))

		waves, err := s.Wave().ListByScenario(context.TODO(), scenarioID)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(2))
		Expect(waves[0].WaveNumber).To(Equal(1))
		Expect(waves[0].VMIDs.Data).To(Equal([]string{"vm-1", "vm-2"}))
		Expect(waves[0].DependsOnWaveIDs).To(BeNil())
		Expect(waves[1].WaveNumber).To(Equal(2))
		Expect(waves[1].DependsOnWaveIDs.Data).To(Equal([]uuid.UUID{first}))
	})

	It("create batch with no waves is a no-op", func() {
		created, err := s.Wave().CreateBatch(context.TODO(), nil)
		Expect(err).To(BeNil())
		Expect(created).To(HaveLen(0))
	})

	It("delete by scenario only touches that scenario", func() {
		other := uuid.New()
		_, err := s.Wave().CreateBatch(context.TODO(), []model.MigrationWave{
			{ID: uuid.New(), ScenarioID: scenarioID, WaveNumber: 1, VMIDs: model.MakeJSONField([]string{"vm-1"}), Status: model.WaveStatusPlanned},
			{ID: uuid.New(), ScenarioID: other, WaveNumber: 1, VMIDs: model.MakeJSONField([]string{"vm-2"}), Status: model.WaveStatusPlanned},
		})
		Expect(err).To(BeNil())

		Expect(s.Wave().DeleteByScenario(context.TODO(), scenarioID)).To(BeNil())

		waves, err := s.Wave().ListByScenario(context.TODO(), scenarioID)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(0))

		waves, err = s.Wave().ListByScenario(context.TODO(), other)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(1))
	})
})
