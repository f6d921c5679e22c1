package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Thai section headings used to steer the model toward the right part of the
// declaration. Keyed by section name.
var sectionHints = map[string]string{
	"identity":       "ข้อมูลผู้ยื่นบัญชี (ชื่อ สกุล อายุ สถานภาพ ที่อยู่ และชื่อ-สกุลเดิมถ้ามี)",
	"spouse":         "ข้อมูลคู่สมรส (มักมีคำว่า \"คู่สมรส\" นำหน้า)",
	"relatives":      "บิดา มารดา พี่น้อง บุตร และบิดามารดาของคู่สมรส",
	"positions":      "ประวัติการทำงาน ตำแหน่งปัจจุบันและอดีต ของผู้ยื่นและคู่สมรส",
	"income":         "รายการรายได้ (รายได้ประจำ รายได้จากทรัพย์สิน รายได้อื่น)",
	"expense":        "รายการรายจ่าย (รายจ่ายประจำ รายจ่ายอื่น)",
	"tax":            "สรุปยอดทรัพย์สินและหนี้สินตามประเภท และข้อมูลการเสียภาษี",
	"asset_land":     "รายการที่ดิน (โฉนด น.ส.3 ส.ป.ก.)",
	"asset_building": "รายการโรงเรือนและสิ่งปลูกสร้าง (บ้าน อาคาร ห้องชุด)",
	"asset_vehicle":  "รายการยานพาหนะ (รถยนต์ รถจักรยานยนต์ เรือ)",
	"asset_other":    "รายการทรัพย์สินอื่น (นาฬิกา เครื่องประดับ พระเครื่อง ทองคำ ปืน กระเป๋า ฯลฯ)",
}

// BuildSystemPrompt composes the system message: role, extraction rules, and
// the enum subset relevant to this section.
func BuildSystemPrompt(req SectionRequest) string {
	parts := []string{
		"คุณเป็น AI ผู้เชี่ยวชาญในการวิเคราะห์และแยกข้อมูลจากเอกสารบัญชีแสดงรายการทรัพย์สินและหนี้สิน",
		"ของสำนักงานคณะกรรมการป้องกันและปราบปรามการทุจริตแห่งชาติ (ป.ป.ช.)",
		"",
		"หน้าที่ของคุณ: อ่านข้อความ OCR แล้วแยกเฉพาะข้อมูลหมวด \"" + req.Section + "\" (" + sectionHints[req.Section] + ")",
		"ออกมาเป็น JSON ตาม schema ที่กำหนดเท่านั้น",
		"",
		"กฎสำคัญ:",
		"- ถ้าไม่พบข้อมูล ให้ใส่ null (สำหรับ field) หรือ [] (สำหรับ rows)",
		"- ตัวเลขเงินให้เก็บเป็น number ไม่ใช่ string (ลบเครื่องหมาย , ออก) เช่น 1234567.89",
		"- ปีให้เก็บเป็น พ.ศ. (เช่น 2566)",
		"- field ที่เป็นรหัส (ลงท้าย _id) ให้ใช้ตัวเลขจากตาราง enum ด้านล่างเท่านั้น ถ้าไม่แน่ใจให้ใส่ null",
		"- owner_by_* และ is_death ให้เป็น boolean (true/false)",
		"- ตอบเป็น JSON เท่านั้น ไม่ต้องมี markdown code block หรือคำอธิบายอื่น",
	}
	if req.EnumContext != "" {
		parts = append(parts, "", "Enum References:", req.EnumContext)
	}
	return strings.Join(parts, "\n")
}

// BuildUserPrompt packages the OCR text, page position and the response
// schema for one section request.
func BuildUserPrompt(req SectionRequest) string {
	var b strings.Builder
	if req.PageIndex > 0 {
		fmt.Fprintf(&b, "จากข้อความ OCR ของหน้า %d/%d กรุณาแยกข้อมูลหมวด %s:\n\n", req.PageIndex, req.PageCount, req.Section)
	} else {
		fmt.Fprintf(&b, "จากข้อความ OCR ทั้งเอกสาร กรุณาแยกข้อมูลหมวด %s:\n\n", req.Section)
	}
	b.WriteString("---OCR TEXT START---\n")
	b.WriteString(req.SourceText)
	b.WriteString("\n---OCR TEXT END---\n\n")
	fmt.Fprintf(&b, "Document ID: %s\nNACC ID: %d\n\n", req.DocumentID, req.NaccID)
	b.WriteString("โปรดส่งผลลัพธ์เป็น JSON ตาม schema นี้เท่านั้น:\n\n")
	b.WriteString(mustJSON(req.Schema))
	b.WriteString("\n\nสำคัญมาก: ตอบเป็น JSON เท่านั้น")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
