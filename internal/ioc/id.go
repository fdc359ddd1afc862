package ioc

import (
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/sony/sonyflake"
)

func InitIDGenerator() *sonyflake.Sonyflake {
	machineID := econf.GetInt("app.machineId")
	g := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		MachineID: func() (uint16, error) {
			if machineID <= 0 || machineID > 0xFFFF {
				return 1, nil
			}
			return uint16(machineID), nil
		},
	})
	if g == nil {
		panic(fmt.Errorf("初始化ID生成器失败, machineId=%d", machineID))
	}
	return g
}
