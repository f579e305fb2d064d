package store_test

import (
	"context"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/vmdash/scenario-planner/internal/config"
	"github.com/vmdash/scenario-planner/internal/store"
	"github.com/vmdash/scenario-planner/internal/store/model"
)

const (
	insertVMStm    = "INSERT INTO virtual_machines (id, name, cpus, memory, provisioned_mib, power_state, datacenter, cluster, folder) VALUES ('%s', '%s', %d, %d, %f, 'poweredOn', '%s', '%s', '%s');"
	insertLabelStm = "INSERT INTO vm_labels (key, value, vm_id) VALUES ('%s', '%s', '%s');"
)

var _ = Describe("vm store", Ordered, func() {
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
		gormdb.Exec("DELETE FROM vm_labels;")
		gormdb.Exec("DELETE FROM virtual_machines;")
	})

	Context("list", func() {
		BeforeEach(func() {
			tx := gormdb.Exec(fmt.Sprintf(insertVMStm, "vm-1", "web-01", 2, 4096, 102400.0, "dc-east", "cluster-a", "/prod/web"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertVMStm, "vm-2", "db-01", 8, 32768, 512000.0, "dc-east", "cluster-b", "/prod/db"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertVMStm, "vm-3", "test-01", 4, 8192, 204800.0, "dc-west", "cluster-a", "/test"))
			Expect(tx.Error).To(BeNil())
		})

		It("successfully lists all vms", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(3))
		})

		It("successfully filters by ids", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().ByIDs([]string{"vm-1", "vm-3"}), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(2))
		})

		It("successfully filters by datacenter", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().ByDatacenters([]string{"dc-west"}), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(1))
			Expect(vms[0].ID).To(Equal("vm-3"))
		})

		It("successfully filters by folder prefix", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().ByFolderPrefixes([]string{"/prod"}), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(2))
		})

		It("combines distinct criteria with AND", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().
				ByDatacenters([]string{"dc-east"}).
				ByClusters([]string{"cluster-a"}), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(1))
			Expect(vms[0].ID).To(Equal("vm-1"))
		})

		It("successfully filters by labels requiring every pair", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertLabelStm, "env", "prod", "vm-1"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLabelStm, "tier", "web", "vm-1"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLabelStm, "env", "prod", "vm-2"))
			Expect(tx.Error).To(BeNil())

			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().
				ByLabels(map[string]string{"env": "prod", "tier": "web"}), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(1))
			Expect(vms[0].ID).To(Equal("vm-1"))
			Expect(vms[0].Labels).To(HaveLen(2))
		})

		It("successfully resolves a selection criteria value", func() {
			criteria := model.SelectionCriteria{
				Datacenters: []string{"dc-east", "dc-west"},
				Clusters:    []string{"cluster-a"},
			}
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter().ByCriteria(criteria), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(2))
		})

		It("successfully sorts by provisioned storage", func() {
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter(),
				store.NewVMQueryOptions().WithSortOrder(store.SortByStorage))
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(3))
			Expect(vms[0].ID).To(Equal("vm-1"))
			Expect(vms[1].ID).To(Equal("vm-3"))
			Expect(vms[2].ID).To(Equal("vm-2"))
		})

		It("list vms - empty inventory", func() {
			gormdb.Exec("DELETE FROM virtual_machines;")
			vms, err := s.VirtualMachine().List(context.TODO(), store.NewVMQueryFilter(), nil)
			Expect(err).To(BeNil())
			Expect(vms).To(HaveLen(0))
		})
	})

	Context("get", func() {
		It("successfully gets a vm with labels", func() {
			tx := gormdb.Exec(fmt.Sprintf(insertVMStm, "vm-1", "web-01", 2, 4096, 102400.0, "dc-east", "cluster-a", "/prod/web"))
			Expect(tx.Error).To(BeNil())
			tx = gormdb.Exec(fmt.Sprintf(insertLabelStm, "env", "prod", "vm-1"))
			Expect(tx.Error).To(BeNil())

			vm, err := s.VirtualMachine().Get(context.TODO(), "vm-1")
			Expect(err).To(BeNil())
			Expect(vm.Name).To(Equal("web-01"))
			Expect(*vm.CPUs).To(Equal(2))
			Expect(vm.Labels).To(HaveLen(1))
		})

		It("failed to get vm - vm does not exist", func() {
			vm, err := s.VirtualMachine().Get(context.TODO(), "missing")
			Expect(err).To(Equal(store.ErrRecordNotFound))
			Expect(vm).To(BeNil())
		})
	})
})
