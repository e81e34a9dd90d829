package server

import (
	"fmt"

	"github.com/fatih/color"
)

func (s *Server) printBanner(addr string) {
	if s.banner == nil {
		return
	}

	title := color.New(color.FgCyan, color.Bold).SprintFunc()
	label := color.New(color.FgHiBlack).SprintFunc()
	value := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(s.banner, "\n  %s\n\n", title("dispatch"))
	fmt.Fprintf(s.banner, "  %s %s\n", label("listening"), value("http://"+addr))
	fmt.Fprintf(s.banner, "  %s   %s\n", label("backend"), value(s.backend.Name()))
	if s.cfg.Metrics.Enabled {
		fmt.Fprintf(s.banner, "  %s   %s\n", label("metrics"), value(s.cfg.Metrics.Path))
	}
	for _, route := range s.Routes() {
		fmt.Fprintf(s.banner, "  %s     %s\n", label("route"), value(route))
	}
	fmt.Fprintln(s.banner)
}
