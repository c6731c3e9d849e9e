package cmd

import (
	"printshop/internal/adapters/out/postgres"
	"printshop/internal/core/application/usecases/commands"
	"printshop/internal/core/application/usecases/queries"
	"printshop/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateSpecificationCommandHandler() commands.UpdateSpecificationCommandHandler {
	return commands.NewUpdateSpecificationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePrepressCommandHandler() commands.UpdatePrepressCommandHandler {
	return commands.NewUpdatePrepressCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDesignerCommandHandler() commands.AssignDesignerCommandHandler {
	return commands.NewAssignDesignerCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusBacklogQueryHandler() queries.GetStatusBacklogQueryHandler {
	return queries.NewGetStatusBacklogQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	var f ports.UnitOfWorkFactory = FuncUnitOfWorkFactory(func() ports.UnitOfWork {
		return c.uowFactory.Create()
	})
	return queries.NewGetOrderProgressQueryHandler(f)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUnitOfWorkFactory func() ports.UnitOfWork

func (f FuncUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f()
}
