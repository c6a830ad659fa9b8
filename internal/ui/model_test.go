package ui

import (
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestModel(t *testing.T) {
	Convey("Given a notifier", t, func() {
		var m Model

		Convey("It should leave content alone while idle", func() {
			So(m.View("a\nb"), ShouldEqual, "a\nb")
		})

		Convey("When notified", func() {
			cmd := m.Update(Notify("Copied 9 colors")())
			So(cmd, ShouldNotBeNil)
			So(m.Notification(), ShouldEqual, "Copied 9 colors")
			So(strings.HasPrefix(m.View("a\nb"), "a\nb"), ShouldBeTrue)
			So(m.View("a\nb"), ShouldContainSubstring, "Copied 9 colors")

			Convey("A stale clear should keep a newer notification", func() {
				m.Update(Notify("Copied 3 colors")())
				m.Update(clearNotificationMsg{generation: 1})
				So(m.Notification(), ShouldEqual, "Copied 3 colors")

				m.Update(clearNotificationMsg{generation: 2})
				So(m.Notification(), ShouldBeEmpty)
			})
		})
	})
}
