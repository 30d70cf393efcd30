package graph

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("argument decoding", func() {
	Describe("parseID", func() {
		It("decodes a numeric id", func() {
			id, err := parseID("42")
			Expect(err).NotTo(HaveOccurred())
			Expect(id).To(Equal(int64(42)))
		})

		It("rejects a malformed id", func() {
			_, err := parseID("forty-two")
			var apiErr *apiError
			Expect(err).To(BeAssignableToTypeOf(apiErr))
			Expect(err.(*apiError).Extensions()).To(HaveKeyWithValue("code", "INVALID"))
		})

		It("rejects a non-string id", func() {
			_, err := parseID(42)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("optString", func() {
		It("leaves an absent field unset", func() {
			opt := optString(map[string]interface{}{}, "description")
			Expect(opt.Set).To(BeFalse())
		})

		It("clears on explicit null", func() {
			opt := optString(map[string]interface{}{"description": nil}, "description")
			Expect(opt.Set).To(BeTrue())
			Expect(opt.Value).To(Equal(""))
		})

		It("passes a value through", func() {
			opt := optString(map[string]interface{}{"description": "hi"}, "description")
			Expect(opt.Set).To(BeTrue())
			Expect(opt.Value).To(Equal("hi"))
		})
	})

	Describe("reqOptString", func() {
		It("leaves an absent field unset", func() {
			opt, err := reqOptString(map[string]interface{}{}, "name")
			Expect(err).NotTo(HaveOccurred())
			Expect(opt.Set).To(BeFalse())
		})

		It("rejects explicit null", func() {
			_, err := reqOptString(map[string]interface{}{"name": nil}, "name")
			Expect(err).To(HaveOccurred())
			Expect(err.(*apiError).Extensions()).To(HaveKeyWithValue("code", "INVALID"))
		})
	})

	Describe("optDueDate", func() {
		It("leaves an absent field unset", func() {
			opt := optDueDate(map[string]interface{}{}, "dueDate")
			Expect(opt.Set).To(BeFalse())
		})

		It("clears on explicit null", func() {
			opt := optDueDate(map[string]interface{}{"dueDate": nil}, "dueDate")
			Expect(opt.Set).To(BeTrue())
			Expect(opt.Value).To(BeNil())
		})

		It("passes a time through", func() {
			due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			opt := optDueDate(map[string]interface{}{"dueDate": due}, "dueDate")
			Expect(opt.Set).To(BeTrue())
			Expect(*opt.Value).To(Equal(due))
		})
	})
})

var _ = Describe("Date scalar", func() {
	It("serializes to YYYY-MM-DD", func() {
		d := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		Expect(dateType.Serialize(d)).To(Equal("2026-03-15"))
		Expect(dateType.Serialize(&d)).To(Equal("2026-03-15"))
	})

	It("serializes a nil pointer to null", func() {
		Expect(dateType.Serialize((*time.Time)(nil))).To(BeNil())
	})

	It("parses a valid date", func() {
		v := dateType.ParseValue("2026-03-15")
		Expect(v).To(Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
	})

	It("rejects a malformed date", func() {
		Expect(dateType.ParseValue("15/03/2026")).To(BeNil())
		Expect(dateType.ParseValue(20260315)).To(BeNil())
	})
})
