package service_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/service"
	"github.com/vmdash/scenario-planner/internal/service/mappers"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

var _ = Describe("wave generation", Ordered, func() {
	var (
		s        store.Store
		gormdb   *gorm.DB
		svc      *service.ScenarioService
		targetID uuid.UUID
	)

	createScenario := func(name string, criteria model.SelectionCriteria) *model.MigrationScenario {
		scenario, err := svc.CreateScenario(context.TODO(), mappers.ScenarioCreateForm{
			Name:               name,
			TargetID:           targetID,
			Strategy:           "rehost",
			Criteria:           criteria,
			ParallelMigrations: 10,
		})
		Expect(err).To(BeNil())
		return scenario
	}

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration()).To(BeNil())
		Expect(s.Seed(context.TODO())).To(BeNil())

		svc = service.NewScenarioService(s)

		target, err := s.Target().Create(context.TODO(), model.MigrationTarget{
			Name:          "wave-target",
			BandwidthMbps: 10000,
		})
		Expect(err).To(BeNil())
		targetID = target.ID

		// 50 VMs with storage decreasing as the id increases, so size-based
		// ordering is the reverse of id order.
		for i := 0; i < 50; i++ {
			vm := model.VirtualMachine{
				ID:             fmt.Sprintf("vm-%02d", i),
				Name:           fmt.Sprintf("vm-%02d", i),
				CPUs:           intPtr(2),
				MemoryMB:       intPtr(4096),
				ProvisionedMiB: floatPtr(float64(50-i) * 10240),
				PowerState:     "poweredOn",
				Datacenter:     "dc-waves",
				Cluster:        "cluster-a",
			}
			Expect(gormdb.Create(&vm).Error).To(BeNil())
		}

		// Three VMs with explicit criticality labels for the ordering test.
		for _, vm := range []model.VirtualMachine{
			{ID: "crit-b-none", Datacenter: "dc-crit", ProvisionedMiB: floatPtr(1024)},
			{ID: "crit-c-high", Datacenter: "dc-crit", ProvisionedMiB: floatPtr(1024),
				Labels: []model.VMLabel{{Key: "criticality", Value: "high", VMID: "crit-c-high"}}},
			{ID: "crit-a-low", Datacenter: "dc-crit", ProvisionedMiB: floatPtr(1024),
				Labels: []model.VMLabel{{Key: "criticality", Value: "low", VMID: "crit-a-low"}}},
		} {
			Expect(gormdb.Create(&vm).Error).To(BeNil())
		}
	})

	AfterAll(func() {
		gormdb.Exec("DELETE FROM vm_labels;")
		gormdb.Exec("DELETE FROM virtual_machines;")
		s.Close()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM migration_waves;")
		gormdb.Exec("DELETE FROM migration_scenarios;")
	})

	It("slices the vm set into a linear dependency chain", func() {
		scenario := createScenario("chain", model.SelectionCriteria{Datacenters: []string{"dc-waves"}})

		waves, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 12, service.WaveOrderingSizeBased)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(5))

		seen := map[string]bool{}
		for i, wave := range waves {
			Expect(wave.WaveNumber).To(Equal(i + 1))
			Expect(wave.Status).To(Equal(model.WaveStatusPlanned))
			if i == 0 {
				Expect(wave.DependsOnWaveIDs).To(BeNil())
			} else {
				Expect(wave.DependsOnWaveIDs.Data).To(Equal([]uuid.UUID{waves[i-1].ID}))
			}
			for _, id := range wave.VMIDs.Data {
				Expect(seen[id]).To(BeFalse())
				seen[id] = true
			}
		}
		Expect(seen).To(HaveLen(50))

		Expect(waves[0].VMIDs.Data).To(HaveLen(12))
		Expect(waves[4].VMIDs.Data).To(HaveLen(2))
	})

	It("orders size-based waves by ascending storage", func() {
		scenario := createScenario("by-size", model.SelectionCriteria{Datacenters: []string{"dc-waves"}})

		waves, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 10, service.WaveOrderingSizeBased)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(5))

		// Smallest VM carries the highest id suffix.
		Expect(waves[0].VMIDs.Data[0]).To(Equal("vm-49"))
		last := waves[4].VMIDs.Data
		Expect(last[len(last)-1]).To(Equal("vm-00"))
	})

	It("orders criticality-based waves low to high with unlabeled as medium", func() {
		scenario := createScenario("by-criticality", model.SelectionCriteria{Datacenters: []string{"dc-crit"}})

		waves, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 1, service.WaveOrderingCriticalityBased)
		Expect(err).To(BeNil())
		Expect(waves).To(HaveLen(3))
		Expect(waves[0].VMIDs.Data).To(Equal([]string{"crit-a-low"}))
		Expect(waves[1].VMIDs.Data).To(Equal([]string{"crit-b-none"}))
		Expect(waves[2].VMIDs.Data).To(Equal([]string{"crit-c-high"}))
	})

	It("regeneration replaces the previous waves", func() {
		scenario := createScenario("regen", model.SelectionCriteria{Datacenters: []string{"dc-waves"}})

		first, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 10, service.WaveOrderingSizeBased)
		Expect(err).To(BeNil())

		second, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 25, service.WaveOrderingSizeBased)
		Expect(err).To(BeNil())
		Expect(second).To(HaveLen(2))

		listed, err := svc.ListMigrationWaves(context.TODO(), scenario.ID)
		Expect(err).To(BeNil())
		Expect(listed).To(HaveLen(2))
		Expect(listed[0].ID).ToNot(Equal(first[0].ID))
	})

	It("failed to generate waves - wave size below 1", func() {
		scenario := createScenario("bad-size", model.SelectionCriteria{Datacenters: []string{"dc-waves"}})

		_, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 0, service.WaveOrderingSizeBased)
		var invalid *service.ErrInvalidRequest
		Expect(errors.As(err, &invalid)).To(BeTrue())
	})

	It("failed to generate waves - unknown ordering", func() {
		scenario := createScenario("bad-ordering", model.SelectionCriteria{Datacenters: []string{"dc-waves"}})

		_, err := svc.GenerateMigrationWaves(context.TODO(), scenario.ID, 10, "alphabetical")
		var invalid *service.ErrInvalidRequest
		Expect(errors.As(err, &invalid)).To(BeTrue())
	})

	It("failed to generate waves - scenario does not exist", func() {
		_, err := svc.GenerateMigrationWaves(context.TODO(), uuid.New(), 10, service.WaveOrderingSizeBased)
		var notFound *service.ErrResourceNotFound
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})

	It("failed to list waves - scenario does not exist", func() {
		_, err := svc.ListMigrationWaves(context.TODO(), uuid.New())
		var notFound *service.ErrResourceNotFound
		Expect(errors.As(err, &notFound)).To(BeTrue())
	})
})
