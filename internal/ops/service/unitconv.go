package service

import "github.com/laujialiang0101/aicha-app/internal/ops/entity"

// ConversionFactors 物料的包装换算系数，未配置的系数按 1 处理
type ConversionFactors struct {
	UnitsPerPack   int
	PacksPerCarton int
	UnitsPerCarton int
}

// PackCount 一次盘点的 箱/排/件 计数
type PackCount struct {
	Cartons int
	Packs   int
	Units   int
}

// FactorsFor 从物料的换算配置取系数，物料未配置换算时全部按 1
func FactorsFor(conv *entity.UnitConversion) ConversionFactors {
	if conv == nil {
		return ConversionFactors{UnitsPerPack: 1, PacksPerCarton: 1, UnitsPerCarton: 1}
	}
	return ConversionFactors{
		UnitsPerPack:   conv.UnitsPerPack,
		PacksPerCarton: conv.PacksPerCarton,
		UnitsPerCarton: conv.UnitsPerCarton,
	}
}

// TotalUnits 把 箱/排/件 折算成基础单位总量：
// cartons*unitsPerCarton + packs*unitsPerPack + units。
// 负数计数按 0 处理，缺失系数按 1 处理。
func TotalUnits(f ConversionFactors, c PackCount) int {
	upp := f.UnitsPerPack
	if upp <= 0 {
		upp = 1
	}
	upc := f.UnitsPerCarton
	if upc <= 0 {
		upc = 1
	}
	cartons := c.Cartons
	if cartons < 0 {
		cartons = 0
	}
	packs := c.Packs
	if packs < 0 {
		packs = 0
	}
	units := c.Units
	if units < 0 {
		units = 0
	}
	return cartons*upc + packs*upp + units
}
