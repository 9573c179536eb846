package collector

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// CPUTimes holds cumulative CPU time counters in seconds.
type CPUTimes struct {
	User   float64
	System float64
	Idle   float64
	IOWait float64
	Total  float64
}

// LoadAvg holds the 1, 5 and 15 minute load averages.
type LoadAvg struct {
	Min1  float64
	Min5  float64
	Min15 float64
}

// IOCounter holds cumulative byte counters for one interface or disk.
type IOCounter struct {
	Name string
	In   uint64
	Out  uint64
}

// Source reads raw host metrics.
type Source interface {
	CPUTimes(ctx context.Context) (CPUTimes, error)
	LoadAvg(ctx context.Context) (LoadAvg, error)
	MemoryPercent(ctx context.Context) (float64, error)
	SwapPercent(ctx context.Context) (float64, error)
	NetCounters(ctx context.Context) ([]IOCounter, error)
	DiskCounters(ctx context.Context) ([]IOCounter, error)
	Uptime(ctx context.Context) (time.Duration, error)
}

// hostSource reads the local host through gopsutil.
type hostSource struct{}

// NewHostSource returns a Source for the local machine.
func NewHostSource() Source {
	return hostSource{}
}

func (hostSource) CPUTimes(ctx context.Context) (CPUTimes, error) {
	stats, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUTimes{}, err
	}
	if len(stats) == 0 {
		return CPUTimes{}, nil
	}
	s := stats[0]
	total := s.User + s.System + s.Idle + s.Nice + s.Iowait + s.Irq +
		s.Softirq + s.Steal + s.Guest + s.GuestNice
	return CPUTimes{
		User:   s.User + s.Nice,
		System: s.System + s.Irq + s.Softirq,
		Idle:   s.Idle,
		IOWait: s.Iowait,
		Total:  total,
	}, nil
}

func (hostSource) LoadAvg(ctx context.Context) (LoadAvg, error) {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return LoadAvg{}, err
	}
	return LoadAvg{Min1: avg.Load1, Min5: avg.Load5, Min15: avg.Load15}, nil
}

func (hostSource) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

func (hostSource) SwapPercent(ctx context.Context) (float64, error) {
	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return sw.UsedPercent, nil
}

func (hostSource) NetCounters(ctx context.Context) ([]IOCounter, error) {
	stats, err := net.IOCountersWithContext(ctx, true)
	if err != nil {
		return nil, err
	}
	out := make([]IOCounter, 0, len(stats))
	for _, s := range stats {
		out = append(out, IOCounter{Name: s.Name, In: s.BytesRecv, Out: s.BytesSent})
	}
	return out, nil
}

func (hostSource) DiskCounters(ctx context.Context) ([]IOCounter, error) {
	stats, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]IOCounter, 0, len(stats))
	for name, s := range stats {
		out = append(out, IOCounter{Name: name, In: s.ReadBytes, Out: s.WriteBytes})
	}
	return out, nil
}

func (hostSource) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}
