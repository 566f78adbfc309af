package util

import (
	"strconv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIntSliceFlag(t *testing.T) {
	Convey("When setting IntSliceFlag to empty string", t, func(c C) {
		f := IntSliceFlag{}
		err := f.Set("")
		c.So(err, ShouldBeNil)
		c.So(f, ShouldHaveLength, 0)
	})

	Convey("When setting IntSliceFlag to invalid value", t, func(c C) {
		f := IntSliceFlag{}
		err := f.Set("foo")
		c.So(err, ShouldHaveSameTypeAs, &strconv.NumError{})
	})

	Convey("When setting IntSliceFlag to a negative size", t, func(c C) {
		f := IntSliceFlag{}
		err := f.Set("10,-1")
		c.So(err, ShouldNotBeNil)
	})

	Convey("When setting IntSliceFlag to the reference sizes with spaces and repeated commas", t, func(c C) {
		f := IntSliceFlag{}
		err := f.Set(" 10 ,, 1000, 100000")
		c.So(err, ShouldBeNil)
		c.So(f, ShouldResemble, IntSliceFlag{10, 1000, 100000})
		c.So(f.String(), ShouldEqual, "10,1000,100000")
	})

	Convey("When setting IntSliceFlag twice the last value wins", t, func(c C) {
		f := IntSliceFlag{}
		c.So(f.Set("1,2"), ShouldBeNil)
		c.So(f.Set("3"), ShouldBeNil)
		c.So(f, ShouldResemble, IntSliceFlag{3})
	})
}

func TestSplitList(t *testing.T) {
	Convey("SplitList trims and drops empties", t, func() {
		So(SplitList(" engine, ,global,"), ShouldResemble, []string{"engine", "global"})
		So(SplitList(""), ShouldBeNil)
	})
}
